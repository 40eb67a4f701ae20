package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmaradar/internal/domain"
)

func TestEventTypeLabel(t *testing.T) {
	assert.Equal(t, "WYCOFANIE", EventTypeLabel(domain.DrugEventWithdrawal))
	assert.Equal(t, "ZAWIESZENIE", EventTypeLabel(domain.DrugEventSuspension))
	assert.Equal(t, "NOWY LEK", EventTypeLabel(domain.DrugEventRegistration))
	assert.Equal(t, "INNE", EventTypeLabel(domain.DrugEventType("INNE")))
}

func TestEventPriority(t *testing.T) {
	assert.Equal(t, domain.DrugEventPriorityHigh, EventPriority(domain.DrugEventWithdrawal))
	assert.Equal(t, domain.DrugEventPriorityHigh, EventPriority(domain.DrugEventSuspension))
	assert.Equal(t, domain.DrugEventPriorityMedium, EventPriority(domain.DrugEventRegistration))
}

func TestFormatEventDate(t *testing.T) {
	assert.Equal(t, "03.11.2025", FormatEventDate("2025-11-03"))
	// nieparsowalna data wraca w oryginale
	assert.Equal(t, "b.d.", FormatEventDate("b.d."))
}
