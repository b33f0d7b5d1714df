package artifacts

import (
	"fmt"
	"strings"
)

// routeFilesTag is the configuration element naming the simulator's route
// inputs. A generated configuration carries exactly one.
const routeFilesTag = "route-files"

// SetRouteFiles points the scenario configuration at the given route files,
// replacing whatever the element referenced before. The value is the
// comma-joined list, so callers must pass it deduplicated and in a stable
// order. A document without a matching element is left untouched.
func SetRouteFiles(cfgPath string, routeFiles []string) error {
	doc, err := readRooted(cfgPath)
	if err != nil {
		return err
	}
	matches := doc.FindElements("//" + routeFilesTag)
	if len(matches) == 0 {
		return nil
	}
	value := strings.Join(routeFiles, ",")
	for _, el := range matches {
		el.CreateAttr("value", value)
	}
	if err := doc.WriteToFile(cfgPath); err != nil {
		return fmt.Errorf("writing %s: %w", cfgPath, err)
	}
	return nil
}

// RouteFilesValue reads back the route-files reference of a configuration.
// Mostly useful for verification after assembly.
func RouteFilesValue(cfgPath string) (string, error) {
	doc, err := readRooted(cfgPath)
	if err != nil {
		return "", err
	}
	el := doc.FindElement("//" + routeFilesTag)
	if el == nil {
		return "", fmt.Errorf("%s: no %s element", cfgPath, routeFilesTag)
	}
	return el.SelectAttrValue("value", ""), nil
}
