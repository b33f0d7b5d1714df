package workspace

// Artifact filenames shared between the stages and the external tools.
const (
	// network conversion
	NetConvertConfig = "osm.netccfg"
	Network          = "osm.net.xml"
	PTStops          = "osm_stops.add.xml"
	PTLines          = "osm_ptlines.xml"
	SideParking      = "osm_parking.xml"

	// public-transport flow conversion
	PTFlows = "osm_pt.rou.xml"

	// parking-area extraction and merge
	ParkingAreas     = "osm_parking_areas.add.xml"
	MergedParking    = "osm_complete_parking_areas.add.xml"
	ParkingRerouters = "osm_parking_rerouters.add.xml"

	// polygon conversion
	Polygons = "osm_polygons.add.xml"

	// TAZ and building extraction
	TAZ             = "osm_taz.xml"
	ODWeights       = "osm_taz_weight.csv"
	BuildingsDir    = "buildings"
	BuildingsPrefix = "buildings/osm_buildings"

	// origin-destination matrix synthesis
	ODMatrix = "osm_odmatrix_amitran.xml"

	// activity-based mobility generation
	ActivityGenConfig   = "activitygen.json"
	ScenarioActivityGen = "osm_activitygen.json"

	// simulation
	SumoConfig = "osm.sumocfg"
)

// routeFileMarker tags every generated route file, wherever it came from.
const routeFileMarker = ".rou.xml"

// DefaultTemplates are copied from the defaults directory into every new
// workspace before the first stage runs.
var DefaultTemplates = []string{
	ActivityGenConfig,
	"basic.vType.xml",
	"duarouter.sumocfg",
	NetConvertConfig,
	SumoConfig,
}
