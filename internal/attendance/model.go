package attendance

import "time"

// Record is one check-in/check-out interval for a member. An open
// record has CheckOutTime = nil; the schema enforces at most one open
// record per member with a partial unique index.
type Record struct {
	ID           int        `db:"id" json:"id"`
	MemberID     int        `db:"member_id" json:"member_id"`
	CheckInTime  time.Time  `db:"check_in_time" json:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time" json:"check_out_time"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// RecordResponse is the transport shape of a Record. Durations are
// floored to whole minutes for display only; the timestamps keep full
// precision. Open records report still_present instead of a number.
type RecordResponse struct {
	Record
	DurationMinutes *int `json:"duration_minutes,omitempty"`
	StillPresent    bool `json:"still_present"`
}

func (r Record) Response() RecordResponse {
	resp := RecordResponse{Record: r}
	if r.CheckOutTime == nil {
		resp.StillPresent = true
		return resp
	}
	minutes := int(r.CheckOutTime.Sub(r.CheckInTime).Minutes())
	resp.DurationMinutes = &minutes
	return resp
}

func toResponses(records []Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.Response())
	}
	return responses
}

type CheckInRequest struct {
	CheckInTime *time.Time `json:"check_in_time"`
}

type CheckOutRequest struct {
	CheckOutTime *time.Time `json:"check_out_time"`
}
