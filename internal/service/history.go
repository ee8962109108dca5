package service

import "github.com/saadjs/dayledger/internal/model"

type DayTotals struct {
	Date    string       `json:"date"`
	Totals  model.Totals `json:"totals"`
	Entries int          `json:"entries"`
}

type HistoryReport struct {
	Days    []DayTotals  `json:"days"`
	Average model.Totals `json:"average"`
	Lowest  *DayTotals   `json:"lowest_calorie_day,omitempty"`
	Highest *DayTotals   `json:"highest_calorie_day,omitempty"`
}

// SummarizeHistory keeps the input order and averages over all days.
func SummarizeHistory(history []model.HistoryEntry) HistoryReport {
	report := HistoryReport{Days: make([]DayTotals, 0, len(history))}
	var sum model.Totals
	for _, h := range history {
		d := DayTotals{Date: h.Date, Totals: h.Totals(), Entries: len(h.Foods)}
		report.Days = append(report.Days, d)
		sum = sum.Add(d.Totals)
	}
	if len(report.Days) == 0 {
		return report
	}
	n := float64(len(report.Days))
	report.Average = model.Totals{
		Calories: sum.Calories / n,
		Protein:  sum.Protein / n,
		Carbs:    sum.Carbs / n,
		Fat:      sum.Fat / n,
	}
	lowest, highest := 0, 0
	for i, d := range report.Days {
		if d.Totals.Calories < report.Days[lowest].Totals.Calories {
			lowest = i
		}
		if d.Totals.Calories > report.Days[highest].Totals.Calories {
			highest = i
		}
	}
	l, h := report.Days[lowest], report.Days[highest]
	report.Lowest = &l
	report.Highest = &h
	return report
}
