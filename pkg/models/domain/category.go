package domain

// StatusCategory is the closed set of business states an offer's raw status
// text is classified into.
type StatusCategory string

const (
	CategoryInDevelopment StatusCategory = "in_development"
	CategoryDelivered     StatusCategory = "delivered_pending_response"
	CategoryWon           StatusCategory = "won"
	CategoryLost          StatusCategory = "lost"
	CategoryCancelled     StatusCategory = "cancelled"
	CategoryOther         StatusCategory = "other"
)

// Categories returns all categories in report order.
func Categories() []StatusCategory {
	return []StatusCategory{
		CategoryInDevelopment,
		CategoryDelivered,
		CategoryWon,
		CategoryLost,
		CategoryCancelled,
		CategoryOther,
	}
}
