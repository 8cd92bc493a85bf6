package overtime

import (
	"errors"
	"testing"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestRequestValidate(t *testing.T) {
	valid := CreateRequestRequest{
		RequestDate: "2026-03-15",
		StartTime:   "18:00",
		EndTime:     "21:30",
		Reason:      "Month-end closing",
	}
	assert.NoError(t, valid.Validate())
}

func TestCreateRequestRequestValidateCollectsAllErrors(t *testing.T) {
	req := CreateRequestRequest{
		RequestDate: "15/03/2026",
		StartTime:   "25:00",
		EndTime:     "9:30",
		Reason:      "   ",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	fields := errs.ToMap()
	assert.Len(t, fields, 4)
	assert.Contains(t, fields, "request_date")
	assert.Contains(t, fields, "start_time")
	assert.Contains(t, fields, "end_time")
	assert.Contains(t, fields, "reason")
}

func TestRejectRequestRequestValidate(t *testing.T) {
	ok := RejectRequestRequest{Reason: "Hours do not match the duty roster"}
	assert.NoError(t, ok.Validate())

	empty := RejectRequestRequest{Reason: "  "}
	err := empty.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "reason")
}

func TestToRequestResponse(t *testing.T) {
	created := time.Date(2026, 3, 10, 8, 15, 0, 0, time.UTC)
	r := Request{
		ID:             "req-1",
		EmployeeID:     "emp-1",
		RequestDate:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:      "22:00",
		EndTime:        "02:00",
		TotalHours:     4,
		DayType:        DayTypeSaturday,
		RateMultiplier: 2.0,
		Amount:         160,
		Reason:         "Server migration window",
		Status:         "pending_verification",
		CreatedAt:      created,
	}

	resp := ToRequestResponse(r)

	assert.Equal(t, "2026-03-14", resp.RequestDate)
	assert.Equal(t, "10:00 PM - 2:00 AM", resp.TimeRange)
	assert.Equal(t, "4.0", resp.TotalHoursText)
	assert.Equal(t, "RM 160.00", resp.AmountText)
	assert.Equal(t, "saturday", resp.DayType)
	assert.Equal(t, "Saturday", resp.DayTypeLabel)
	assert.Equal(t, "amber", resp.DayTypeColor)
	assert.Equal(t, "2026-03-10T08:15:00Z", resp.CreatedAt)
	assert.Nil(t, resp.HRApprovedAt)
}
