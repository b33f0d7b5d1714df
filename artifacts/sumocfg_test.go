package artifacts

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

const sumocfgFixture = `<configuration>
  <input>
    <net-file value="osm.net.xml"/>
    <route-files value=""/>
    <additional-files value="basic.vType.xml,osm_polygons.add.xml"/>
  </input>
  <time>
    <begin value="0"/>
    <end value="86400"/>
  </time>
</configuration>`

// TestSetRouteFiles_RewritesSingleElement updates exactly the route-files
// element and leaves everything else in the document alone.
func TestSetRouteFiles_RewritesSingleElement(t *testing.T) {
	dir := t.TempDir()
	cfg := writeDoc(t, dir, "osm.sumocfg", sumocfgFixture)

	require.NoError(t, SetRouteFiles(cfg, []string{"a.rou.xml", "b.rou.xml"}))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(cfg))

	value := doc.FindElement("//route-files").SelectAttrValue("value", "")
	require.False(t, strings.HasSuffix(value, ","), "no trailing comma")
	parts := strings.Split(value, ",")
	require.ElementsMatch(t, []string{"a.rou.xml", "b.rou.xml"}, parts, "value must be a permutation of the route files")
	seen := map[string]bool{}
	for _, p := range parts {
		require.False(t, seen[p], "no duplicate entries")
		seen[p] = true
	}

	require.Equal(t, "osm.net.xml", doc.FindElement("//net-file").SelectAttrValue("value", ""))
	require.Equal(t, "basic.vType.xml,osm_polygons.add.xml", doc.FindElement("//additional-files").SelectAttrValue("value", ""))
	require.Equal(t, "86400", doc.FindElement("//end").SelectAttrValue("value", ""))
}

// TestSetRouteFiles_ReplacesPreviousValue verifies a re-run never accumulates.
func TestSetRouteFiles_ReplacesPreviousValue(t *testing.T) {
	dir := t.TempDir()
	cfg := writeDoc(t, dir, "osm.sumocfg", sumocfgFixture)

	require.NoError(t, SetRouteFiles(cfg, []string{"a.rou.xml", "b.rou.xml"}))
	require.NoError(t, SetRouteFiles(cfg, []string{"a.rou.xml", "b.rou.xml"}))

	value, err := RouteFilesValue(cfg)
	require.NoError(t, err)
	require.Equal(t, "a.rou.xml,b.rou.xml", value)
}

// TestSetRouteFiles_NoMatchingElement must neither write nor fail.
func TestSetRouteFiles_NoMatchingElement(t *testing.T) {
	dir := t.TempDir()
	fixture := `<configuration><input><net-file value="osm.net.xml"/></input></configuration>`
	cfg := writeDoc(t, dir, "osm.sumocfg", fixture)

	require.NoError(t, SetRouteFiles(cfg, []string{"a.rou.xml"}))

	data := etree.NewDocument()
	require.NoError(t, data.ReadFromFile(cfg))
	require.Nil(t, data.FindElement("//route-files"), "element must not be invented")
	require.Equal(t, "osm.net.xml", data.FindElement("//net-file").SelectAttrValue("value", ""))
}

// TestRouteFilesValue_MissingElement reports a useful error.
func TestRouteFilesValue_MissingElement(t *testing.T) {
	dir := t.TempDir()
	cfg := writeDoc(t, dir, "osm.sumocfg", `<configuration/>`)
	_, err := RouteFilesValue(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "route-files")
	require.Error(t, func() error { _, e := RouteFilesValue(filepath.Join(dir, "absent.xml")); return e }())
}
