package tetris

// ScoreBoard tracks the current and best score of a session.
type ScoreBoard struct {
	score int
	hi    int
}

// Add credits points and raises the best score if needed.
func (s *ScoreBoard) Add(points int) {
	s.score += points
	s.hi = max(s.hi, s.score)
}

// Score returns the current score.
func (s *ScoreBoard) Score() int {
	return s.score
}

// HiScore returns the best score seen since the board was created.
func (s *ScoreBoard) HiScore() int {
	return s.hi
}

// Attach registers the board as a grid score observer and clears the score
// now and whenever the lifecycle re-enters NotStarted. The best score is kept.
func (s *ScoreBoard) Attach(g *Grid, m *Lifecycle) {
	s.score = 0
	g.AddObserver("score", s.Add)
	m.Subscribe(func(_, to State) {
		if to == StateNotStarted {
			s.score = 0
		}
	})
}
