package domain

import (
	"fmt"
	"math"
)

type Summary struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Summarize counts over the full, unfiltered collection.
func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d of %d tasks completed (%d%%)", s.Completed, s.Total, s.Percentage)
}
