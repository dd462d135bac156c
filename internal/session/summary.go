package session

// Summary holds the live tracker figures for a session.
type Summary struct {
	Attempts int
	Correct  int
	Accuracy float64 // percent, 0-100
	AvgTime  float64 // seconds

	// CumulativeScore[i] is the number of correct answers among the
	// first i+1 attempts.
	CumulativeScore []int

	// Streaks[i] is the streak entering attempt i.
	Streaks []int
}

// Summarize builds a Summary from attempts in the order they were logged.
func Summarize(attempts []Attempt) Summary {
	s := Summary{
		Attempts:        len(attempts),
		CumulativeScore: make([]int, 0, len(attempts)),
		Streaks:         make([]int, 0, len(attempts)),
	}
	if len(attempts) == 0 {
		return s
	}

	var total float64
	for _, a := range attempts {
		if a.Correct {
			s.Correct++
		}
		total += a.ResponseTime
		s.CumulativeScore = append(s.CumulativeScore, s.Correct)
		s.Streaks = append(s.Streaks, a.Streak)
	}
	s.Accuracy = float64(s.Correct) / float64(s.Attempts) * 100
	s.AvgTime = total / float64(s.Attempts)
	return s
}
