package model

// AgentView is what a renderer reads about one agent each frame.
type AgentView struct {
	Id       int32
	Cell     Cell
	Next     Cell
	Moving   bool
	Progress float32
}

type Snapshot struct {
	Turn         int
	MoveInFlight bool
	Agents       []AgentView
}
