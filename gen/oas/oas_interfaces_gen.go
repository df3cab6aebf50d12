// Code generated by ogen, DO NOT EDIT.
package oas

type ConfirmPaymentRes interface {
	confirmPaymentRes()
}

type CreateOrderRes interface {
	createOrderRes()
}

type GetInvoiceRes interface {
	getInvoiceRes()
}

type GetOrderRes interface {
	getOrderRes()
}

type ListOrdersRes interface {
	listOrdersRes()
}

type RetryPaymentRes interface {
	retryPaymentRes()
}

type UpdateOrderStatusRes interface {
	updateOrderStatusRes()
}
