package reaction

// ReactionProcessor reacts with the one Handler it was made with.
type ReactionProcessor struct {
	emotionHandler Handler
}

func NewReactionProcessor(h Handler) *ReactionProcessor {
	return &ReactionProcessor{emotionHandler: h}
}

func (p *ReactionProcessor) React() {
	p.emotionHandler.React()
}
