package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentType(t *testing.T) {
	assert.Equal(t, PaymentTypeCash, ParsePaymentType("Cash"))
	assert.Equal(t, PaymentTypeCreditCard, ParsePaymentType("creditcard"))
	assert.Equal(t, PaymentTypeCheck, ParsePaymentType(" CHECK "))
	// 无法识别的值回退到默认值
	assert.Equal(t, PaymentTypeCash, ParsePaymentType("bitcoin"))
	assert.Equal(t, PaymentTypeCash, ParsePaymentType(""))
}

func TestParseRecurringType(t *testing.T) {
	assert.Equal(t, RecurringTypeAnnual, ParseRecurringType("annual"))
	assert.Equal(t, RecurringTypeMiscellaneous, ParseRecurringType("Miscellaneous"))
	assert.Equal(t, RecurringTypeMonthly, ParseRecurringType("weekly"))
	assert.Equal(t, RecurringTypeMonthly, ParseRecurringType(""))
}

func TestParseIncidentType(t *testing.T) {
	assert.Equal(t, IncidentTypeAccidentalDeath, ParseIncidentType("AccidentalDeath"))
	assert.Equal(t, IncidentTypeNaturalDeath, ParseIncidentType("naturaldeath"))
	assert.Equal(t, IncidentTypeNaturalDeath, ParseIncidentType("unknown"))
}
