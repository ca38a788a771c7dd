// File: services/intelligence/parse.go
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"attendai/models"
	"attendai/services/schedule"
)

type extractedClass struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
	Room      string `json:"room"`
}

// stripFences removes a surrounding ```json ... ``` block if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// canonicalClock reformats a parseable time as "H:MM AM"; anything else is kept.
func canonicalClock(s string) string {
	s = strings.TrimSpace(s)
	if m, err := schedule.ParseClock(s); err == nil {
		return schedule.FormatClock(m)
	}
	return s
}

// ParseSchedule decodes a model reply into schedule items. Entries without a
// recognisable day, a subject, or both times are skipped and counted.
func ParseSchedule(raw string) (items []models.ScheduleItem, dropped int, err error) {
	body := stripFences(raw)
	if body == "" {
		return nil, 0, ErrEmptyExtraction
	}

	var classes []extractedClass
	if err := json.Unmarshal([]byte(body), &classes); err != nil {
		var wrapped struct {
			Schedule []extractedClass `json:"schedule"`
		}
		if err2 := json.Unmarshal([]byte(body), &wrapped); err2 != nil || wrapped.Schedule == nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		classes = wrapped.Schedule
	}

	items = make([]models.ScheduleItem, 0, len(classes))
	for _, c := range classes {
		day, ok := schedule.NormalizeDay(c.Day)
		subject := strings.TrimSpace(c.Subject)
		if !ok || subject == "" || strings.TrimSpace(c.StartTime) == "" || strings.TrimSpace(c.EndTime) == "" {
			dropped++
			continue
		}
		items = append(items, models.ScheduleItem{
			Day:       day,
			StartTime: canonicalClock(c.StartTime),
			EndTime:   canonicalClock(c.EndTime),
			Subject:   subject,
			Room:      strings.TrimSpace(c.Room),
		})
	}

	if len(items) == 0 {
		return nil, dropped, ErrEmptyExtraction
	}
	return items, dropped, nil
}
