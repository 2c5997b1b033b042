package components

import "testing"

func TestRoundScoring(t *testing.T) {
	tests := []struct {
		name        string
		scores      [2]int
		dead        [2]bool
		wantScores  [2]int
		wantWinner  int
		suddenDeath bool
	}{
		{"player 0 survives", [2]int{0, 0}, [2]bool{false, true}, [2]int{1, 0}, NoWinner, false},
		{"draw", [2]int{1, 1}, [2]bool{true, true}, [2]int{1, 1}, NoWinner, false},
		{"timeout", [2]int{1, 1}, [2]bool{false, false}, [2]int{1, 1}, NoWinner, false},
		{"player 1 wins match", [2]int{0, 2}, [2]bool{true, false}, [2]int{0, 3}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &RoundData{WinningScore: 3, Winner: NoWinner}
			r.Slots[0].Score, r.Slots[1].Score = tt.scores[0], tt.scores[1]

			r.ScoreRound(tt.dead)

			got := [2]int{r.Slots[0].Score, r.Slots[1].Score}
			if got != tt.wantScores {
				t.Errorf("Scores = %v, want %v", got, tt.wantScores)
			}
			if r.Winner != tt.wantWinner {
				t.Errorf("Winner = %d, want %d", r.Winner, tt.wantWinner)
			}
			if r.SuddenDeath != tt.suddenDeath {
				t.Errorf("SuddenDeath = %v, want %v", r.SuddenDeath, tt.suddenDeath)
			}
		})
	}
}

func TestRoundSuddenDeath(t *testing.T) {
	r := &RoundData{WinningScore: 1, Winner: NoWinner}
	r.Slots[0].Score, r.Slots[1].Score = 1, 1

	// Both at the winning score after a round, e.g. with overrides applied mid match
	r.ScoreRound([2]bool{false, false})

	if !r.SuddenDeath || r.WinningScore != 1 {
		t.Fatalf("Expected sudden death to 1, got %+v", r)
	}
	if r.Slots[0].Score != 0 || r.Slots[1].Score != 0 {
		t.Error("Expected scores cleared for sudden death")
	}
	if r.Finished() {
		t.Error("Match should continue in sudden death")
	}

	r.ScoreRound([2]bool{true, false})
	if r.Winner != 1 || !r.Finished() {
		t.Errorf("Expected player 1 to win sudden death, got winner %d", r.Winner)
	}
}
