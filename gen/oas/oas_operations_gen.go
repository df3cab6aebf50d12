// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	ConfirmPaymentOperation    OperationName = "ConfirmPayment"
	CreateOrderOperation       OperationName = "CreateOrder"
	GetInvoiceOperation        OperationName = "GetInvoice"
	GetOrderOperation          OperationName = "GetOrder"
	GetPaymentConfigOperation  OperationName = "GetPaymentConfig"
	ListOrdersOperation        OperationName = "ListOrders"
	RetryPaymentOperation      OperationName = "RetryPayment"
	UpdateOrderStatusOperation OperationName = "UpdateOrderStatus"
)
