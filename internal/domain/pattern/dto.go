package pattern

type CycleSlotResponse struct {
	Status string  `json:"status"`
	Hours  float64 `json:"hours"`
}

type ShiftPatternResponse struct {
	ID                 string              `json:"id"`
	Label              string              `json:"label"`
	Cycle              []CycleSlotResponse `json:"cycle"`
	CycleLength        int                 `json:"cycle_length"`
	NominalWeeklyHours float64             `json:"nominal_weekly_hours"`
}

// MapToResponse converts a pattern to its transport shape.
func MapToResponse(p ShiftPattern) ShiftPatternResponse {
	resp := ShiftPatternResponse{
		ID:                 p.ID,
		Label:              p.Label,
		Cycle:              make([]CycleSlotResponse, 0, len(p.Cycle)),
		CycleLength:        p.CycleLength(),
		NominalWeeklyHours: p.NominalWeeklyHours,
	}
	for _, slot := range p.Cycle {
		resp.Cycle = append(resp.Cycle, CycleSlotResponse{
			Status: string(slot.Status),
			Hours:  slot.Hours,
		})
	}
	return resp
}
