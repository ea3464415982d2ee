package domain

type TrackKind int

const (
	TrackAudio TrackKind = iota + 1
	TrackVideo
)

func (k TrackKind) String() string {
	switch k {
	case TrackAudio:
		return "audio"
	case TrackVideo:
		return "video"
	default:
		return "unknown"
	}
}

func ParseTrackKind(s string) (TrackKind, bool) {
	switch s {
	case "audio":
		return TrackAudio, true
	case "video":
		return TrackVideo, true
	default:
		return 0, false
	}
}
