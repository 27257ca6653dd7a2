package types

const (
	POINTS_PER_LEVEL          = 100
	FIRST_SCAN_THRESHOLD      = 1
	POINT_COLLECTOR_THRESHOLD = 100
	EXPLORER_THRESHOLD        = 3
)

type PointsConfig struct {
	PointsPerLevel          int
	FirstScanThreshold      int // scans
	PointCollectorThreshold int // points
	ExplorerThreshold       int // bookmarks
}

func GetPointsConfig() PointsConfig {
	return PointsConfig{
		PointsPerLevel:          POINTS_PER_LEVEL,
		FirstScanThreshold:      FIRST_SCAN_THRESHOLD,
		PointCollectorThreshold: POINT_COLLECTOR_THRESHOLD,
		ExplorerThreshold:       EXPLORER_THRESHOLD,
	}
}

// LevelFor returns the level reached with the given points. Level 1 starts at
// zero points and every PointsPerLevel points adds one.
func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/POINTS_PER_LEVEL + 1
}

// PointsIntoLevel returns how far the given points are into their level.
func PointsIntoLevel(points int) int {
	if points < 0 {
		return 0
	}
	return points % POINTS_PER_LEVEL
}
