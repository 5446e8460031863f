package queue

// DeviceCount is the number of pending jobs queued for one device.
type DeviceCount struct {
	Count  int    `json:"count"`
	Device string `json:"device"`
}

// BuildCount is the number of pending jobs queued for one build. Builds are
// identified by the (build_id, build_url) pair; build_id encodes the build
// date, which is why the report labels this grouping "by date".
type BuildCount struct {
	Count    int    `json:"count"`
	BuildID  string `json:"build_id"`
	BuildURL string `json:"build_url"`
}
