package platform

// MediaKey is a system-wide media control
type MediaKey int

const (
	MediaPlayPause MediaKey = iota
	MediaPrevious
	MediaNext
)

// String returns the key name used in logs and by playerctl
func (k MediaKey) String() string {
	switch k {
	case MediaPlayPause:
		return "play-pause"
	case MediaPrevious:
		return "previous"
	case MediaNext:
		return "next"
	default:
		return "unknown"
	}
}

// SendMediaKey delivers a media key to whatever player the OS routes it to
func (s *System) SendMediaKey(k MediaKey) error {
	return s.sendMediaKey(k)
}
