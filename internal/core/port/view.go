package port

// ViewContainer creates the local representation of a participant.
type ViewContainer interface {
	CreateView(p Participant) (ParticipantView, error)
}

// ParticipantView is owned by exactly one registry entry. Destroy releases it;
// the view must not be used afterwards.
type ParticipantView interface {
	Title() string
	BindAudio(track AudioTrack)
	Destroy()
}
