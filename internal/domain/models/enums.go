package models

import "strings"

// 缴费方式
const (
	PaymentTypeCash            = "Cash"
	PaymentTypeCreditCard      = "CreditCard"
	PaymentTypeBankTransfer    = "BankTransfer"
	PaymentTypeCheck           = "Check"
	PaymentTypeReceiptAttached = "ReceiptAttached"
)

// 缴费周期
const (
	RecurringTypeAnnual        = "Annual"
	RecurringTypeMonthly       = "Monthly"
	RecurringTypeQuarterly     = "Quarterly"
	RecurringTypeIncident      = "Incident"
	RecurringTypeMembership    = "Membership"
	RecurringTypeMiscellaneous = "Miscellaneous"
)

// 事件类型
const (
	IncidentTypeAccidentalDeath = "AccidentalDeath"
	IncidentTypeNaturalDeath    = "NaturalDeath"
)

var paymentTypes = map[string]string{
	"cash":            PaymentTypeCash,
	"creditcard":      PaymentTypeCreditCard,
	"banktransfer":    PaymentTypeBankTransfer,
	"check":           PaymentTypeCheck,
	"receiptattached": PaymentTypeReceiptAttached,
}

var recurringTypes = map[string]string{
	"annual":        RecurringTypeAnnual,
	"monthly":       RecurringTypeMonthly,
	"quarterly":     RecurringTypeQuarterly,
	"incident":      RecurringTypeIncident,
	"membership":    RecurringTypeMembership,
	"miscellaneous": RecurringTypeMiscellaneous,
}

var incidentTypes = map[string]string{
	"accidentaldeath": IncidentTypeAccidentalDeath,
	"naturaldeath":    IncidentTypeNaturalDeath,
}

// ParsePaymentType 解析缴费方式，忽略大小写，无法识别时返回默认值Cash
func ParsePaymentType(s string) string {
	if v, ok := paymentTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return PaymentTypeCash
}

// ParseRecurringType 解析缴费周期，忽略大小写，无法识别时返回默认值Monthly
func ParseRecurringType(s string) string {
	if v, ok := recurringTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return RecurringTypeMonthly
}

// ParseIncidentType 解析事件类型，忽略大小写，无法识别时返回默认值NaturalDeath
func ParseIncidentType(s string) string {
	if v, ok := incidentTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return IncidentTypeNaturalDeath
}
