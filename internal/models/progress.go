package models

import "time"

// Progress is the practice-history record for one word. A record exists only
// for words that have been answered at least once; a word with no Progress is
// implicitly new.
type Progress struct {
	WordTerm        string         `json:"word_term" db:"word_term"`
	TimesSeen       int            `json:"times_seen" db:"times_seen"`
	TimesCorrect    int            `json:"times_correct" db:"times_correct"`
	LastPracticedAt time.Time      `json:"last_practiced_at" db:"last_practiced_at"`
	Streak          int            `json:"streak" db:"streak"`
	Mastered        bool           `json:"mastered" db:"mastered"`
	MasteredAt      time.Time      `json:"mastered_at,omitzero" db:"mastered_at"`
	Ease            float64        `json:"ease" db:"ease"`
	DueAt           time.Time      `json:"due_at" db:"due_at"`
	LapseStreak     int            `json:"lapse_streak" db:"lapse_streak"`
	ConfusedWith    map[string]int `json:"confused_with,omitempty"`
}

// Accuracy returns the lifetime correct ratio, 0 for unseen records.
func (p Progress) Accuracy() float64 {
	if p.TimesSeen == 0 {
		return 0
	}
	return float64(p.TimesCorrect) / float64(p.TimesSeen)
}

// AnswerRecord is one row of the append-only answer log.
type AnswerRecord struct {
	ID          int64     `json:"id" db:"id"`
	WordTerm    string    `json:"word_term" db:"word_term"`
	Correct     bool      `json:"correct" db:"correct"`
	Quality     int       `json:"quality" db:"quality"`
	ResponseMs  int64     `json:"response_ms" db:"response_ms"`
	GivenAnswer string    `json:"given_answer,omitempty" db:"given_answer"`
	AnsweredAt  time.Time `json:"answered_at" db:"answered_at"`
}
