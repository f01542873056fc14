package models

// OrderStatus is the closed set of lifecycle states an order moves through.
// The backend owns transition legality; this client only observes these
// values and decides which ones a courier may request next.
type OrderStatus string

const (
	// Creation and payment.
	StatusPending           OrderStatus = "PENDING"
	StatusWaitingForPayment OrderStatus = "WAITING_FOR_PAYMENT"
	StatusPaymentInProgress OrderStatus = "PAYMENT_IN_PROGRESS"
	StatusPaymentConfirmed  OrderStatus = "PAYMENT_CONFIRMED"

	// Business confirmation and preparation.
	StatusPendingConfirmation OrderStatus = "PENDING_CONFIRMATION"
	StatusConfirmed           OrderStatus = "CONFIRMED"
	StatusRejectedByBusiness  OrderStatus = "REJECTED_BY_BUSINESS"
	StatusPreparing           OrderStatus = "PREPARING"

	// Order ready.
	StatusReadyForCustomerPickup OrderStatus = "READY_FOR_CUSTOMER_PICKUP"
	StatusReadyForDeliveryPickup OrderStatus = "READY_FOR_DELIVERY_PICKUP"

	// Delivery assignment.
	StatusDeliveryPending     OrderStatus = "DELIVERY_PENDING"
	StatusDeliveryAssigned    OrderStatus = "DELIVERY_ASSIGNED"
	StatusDeliveryAccepted    OrderStatus = "DELIVERY_ACCEPTED"
	StatusDeliveryRejected    OrderStatus = "DELIVERY_REJECTED"
	StatusDeliveryReassigning OrderStatus = "DELIVERY_REASSIGNING"

	// Transport.
	StatusOutForPickup   OrderStatus = "OUT_FOR_PICKUP"
	StatusPickedUp       OrderStatus = "PICKED_UP"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"

	// Completion.
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusDeliveryFailed OrderStatus = "DELIVERY_FAILED"
	StatusReturned       OrderStatus = "RETURNED"
	StatusRefunded       OrderStatus = "REFUNDED"
	StatusCompleted      OrderStatus = "COMPLETED"

	// Cancellation variants.
	StatusCancelledByUser     OrderStatus = "CANCELLED_BY_USER"
	StatusCancelledByBusiness OrderStatus = "CANCELLED_BY_BUSINESS"
	StatusCancelledByDelivery OrderStatus = "CANCELLED_BY_DELIVERY"

	StatusFailed OrderStatus = "FAILED"
)

var allStatuses = map[OrderStatus]struct{}{
	StatusPending: {}, StatusWaitingForPayment: {}, StatusPaymentInProgress: {},
	StatusPaymentConfirmed: {}, StatusPendingConfirmation: {}, StatusConfirmed: {},
	StatusRejectedByBusiness: {}, StatusPreparing: {}, StatusReadyForCustomerPickup: {},
	StatusReadyForDeliveryPickup: {}, StatusDeliveryPending: {}, StatusDeliveryAssigned: {},
	StatusDeliveryAccepted: {}, StatusDeliveryRejected: {}, StatusDeliveryReassigning: {},
	StatusOutForPickup: {}, StatusPickedUp: {}, StatusOutForDelivery: {},
	StatusDelivered: {}, StatusDeliveryFailed: {}, StatusReturned: {},
	StatusRefunded: {}, StatusCompleted: {}, StatusCancelledByUser: {},
	StatusCancelledByBusiness: {}, StatusCancelledByDelivery: {}, StatusFailed: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := allStatuses[s]
	return ok
}

func (s OrderStatus) String() string { return string(s) }

// PaymentMethod is how the customer pays for the order.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentDelivery PaymentMethod = "DELIVERY"
)

// PaymentStatus tracks a transfer payment through review.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentInProgress PaymentStatus = "IN_PROGRESS"
	PaymentConfirmed  PaymentStatus = "CONFIRMED"
	PaymentRejected   PaymentStatus = "REJECTED"
)
