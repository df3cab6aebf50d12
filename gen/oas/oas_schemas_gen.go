// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"io"
	"time"

	"github.com/go-faster/errors"
)

// Ref: #/components/schemas/Address
type Address struct {
	Address OptString    `json:"address"`
	City    OptString    `json:"city"`
	Pincode OptString    `json:"pincode"`
	Phone   OptString    `json:"phone"`
	Notes   OptNilString `json:"notes"`
}

// GetAddress returns the value of Address.
func (s *Address) GetAddress() OptString {
	return s.Address
}

// GetCity returns the value of City.
func (s *Address) GetCity() OptString {
	return s.City
}

// GetPincode returns the value of Pincode.
func (s *Address) GetPincode() OptString {
	return s.Pincode
}

// GetPhone returns the value of Phone.
func (s *Address) GetPhone() OptString {
	return s.Phone
}

// GetNotes returns the value of Notes.
func (s *Address) GetNotes() OptNilString {
	return s.Notes
}

// SetAddress sets the value of Address.
func (s *Address) SetAddress(val OptString) {
	s.Address = val
}

// SetCity sets the value of City.
func (s *Address) SetCity(val OptString) {
	s.City = val
}

// SetPincode sets the value of Pincode.
func (s *Address) SetPincode(val OptString) {
	s.Pincode = val
}

// SetPhone sets the value of Phone.
func (s *Address) SetPhone(val OptString) {
	s.Phone = val
}

// SetNotes sets the value of Notes.
func (s *Address) SetNotes(val OptNilString) {
	s.Notes = val
}

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/CartItem
type CartItem struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// GetProductId returns the value of ProductId.
func (s *CartItem) GetProductId() string {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *CartItem) GetQuantity() int {
	return s.Quantity
}

// SetProductId sets the value of ProductId.
func (s *CartItem) SetProductId(val string) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *CartItem) SetQuantity(val int) {
	s.Quantity = val
}

type ConfirmPaymentBadGateway Error

func (*ConfirmPaymentBadGateway) confirmPaymentRes() {}

type ConfirmPaymentBadRequest Error

func (*ConfirmPaymentBadRequest) confirmPaymentRes() {}

type ConfirmPaymentConflict Error

func (*ConfirmPaymentConflict) confirmPaymentRes() {}

type ConfirmPaymentForbidden Error

func (*ConfirmPaymentForbidden) confirmPaymentRes() {}

type ConfirmPaymentNotFound Error

func (*ConfirmPaymentNotFound) confirmPaymentRes() {}

// Ref: #/components/schemas/ConfirmPaymentRequest
type ConfirmPaymentRequest struct {
	IntentId OptString        `json:"intentId"`
	Result   OptPaymentResult `json:"result"`
	Error    OptString        `json:"error"`
}

// GetIntentId returns the value of IntentId.
func (s *ConfirmPaymentRequest) GetIntentId() OptString {
	return s.IntentId
}

// GetResult returns the value of Result.
func (s *ConfirmPaymentRequest) GetResult() OptPaymentResult {
	return s.Result
}

// GetError returns the value of Error.
func (s *ConfirmPaymentRequest) GetError() OptString {
	return s.Error
}

// SetIntentId sets the value of IntentId.
func (s *ConfirmPaymentRequest) SetIntentId(val OptString) {
	s.IntentId = val
}

// SetResult sets the value of Result.
func (s *ConfirmPaymentRequest) SetResult(val OptPaymentResult) {
	s.Result = val
}

// SetError sets the value of Error.
func (s *ConfirmPaymentRequest) SetError(val OptString) {
	s.Error = val
}

type CreateOrderBadGateway Error

func (*CreateOrderBadGateway) createOrderRes() {}

type CreateOrderBadRequest Error

func (*CreateOrderBadRequest) createOrderRes() {}

type CreateOrderConflict Error

func (*CreateOrderConflict) createOrderRes() {}

type CreateOrderForbidden Error

func (*CreateOrderForbidden) createOrderRes() {}

type CreateOrderNotFound Error

func (*CreateOrderNotFound) createOrderRes() {}

// Missing fields are reported together in one 400 response.
// Ref: #/components/schemas/CreateOrderRequest
type CreateOrderRequest struct {
	Items         []CartItem       `json:"items"`
	AddressInfo   OptAddress       `json:"addressInfo"`
	PaymentMethod OptPaymentMethod `json:"paymentMethod"`
}

// GetItems returns the value of Items.
func (s *CreateOrderRequest) GetItems() []CartItem {
	return s.Items
}

// GetAddressInfo returns the value of AddressInfo.
func (s *CreateOrderRequest) GetAddressInfo() OptAddress {
	return s.AddressInfo
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *CreateOrderRequest) GetPaymentMethod() OptPaymentMethod {
	return s.PaymentMethod
}

// SetItems sets the value of Items.
func (s *CreateOrderRequest) SetItems(val []CartItem) {
	s.Items = val
}

// SetAddressInfo sets the value of AddressInfo.
func (s *CreateOrderRequest) SetAddressInfo(val OptAddress) {
	s.AddressInfo = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *CreateOrderRequest) SetPaymentMethod(val OptPaymentMethod) {
	s.PaymentMethod = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Fields    []string        `json:"fields"`
	Items     []StockShortage `json:"items"`
	Current   OptString       `json:"current"`
	Attempted OptString       `json:"attempted"`
	OrderId   OptString       `json:"orderId"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() int {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// GetFields returns the value of Fields.
func (s *Error) GetFields() []string {
	return s.Fields
}

// GetItems returns the value of Items.
func (s *Error) GetItems() []StockShortage {
	return s.Items
}

// GetCurrent returns the value of Current.
func (s *Error) GetCurrent() OptString {
	return s.Current
}

// GetAttempted returns the value of Attempted.
func (s *Error) GetAttempted() OptString {
	return s.Attempted
}

// GetOrderId returns the value of OrderId.
func (s *Error) GetOrderId() OptString {
	return s.OrderId
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val int) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// SetFields sets the value of Fields.
func (s *Error) SetFields(val []string) {
	s.Fields = val
}

// SetItems sets the value of Items.
func (s *Error) SetItems(val []StockShortage) {
	s.Items = val
}

// SetCurrent sets the value of Current.
func (s *Error) SetCurrent(val OptString) {
	s.Current = val
}

// SetAttempted sets the value of Attempted.
func (s *Error) SetAttempted(val OptString) {
	s.Attempted = val
}

// SetOrderId sets the value of OrderId.
func (s *Error) SetOrderId(val OptString) {
	s.OrderId = val
}

type GetInvoiceBadGateway Error

func (*GetInvoiceBadGateway) getInvoiceRes() {}

type GetInvoiceBadRequest Error

func (*GetInvoiceBadRequest) getInvoiceRes() {}

type GetInvoiceConflict Error

func (*GetInvoiceConflict) getInvoiceRes() {}

type GetInvoiceForbidden Error

func (*GetInvoiceForbidden) getInvoiceRes() {}

type GetInvoiceNotFound Error

func (*GetInvoiceNotFound) getInvoiceRes() {}

type GetInvoiceOK struct {
	Data io.Reader
}

// Read reads data from the Data reader.
//
// Kept to satisfy the io.Reader interface.
func (s GetInvoiceOK) Read(p []byte) (n int, err error) {
	if s.Data == nil {
		return 0, io.EOF
	}
	return s.Data.Read(p)
}

// GetInvoiceOKHeaders wraps GetInvoiceOK with response headers.
type GetInvoiceOKHeaders struct {
	ContentDisposition string
	Response           GetInvoiceOK
}

// GetContentDisposition returns the value of ContentDisposition.
func (s *GetInvoiceOKHeaders) GetContentDisposition() string {
	return s.ContentDisposition
}

// GetResponse returns the value of Response.
func (s *GetInvoiceOKHeaders) GetResponse() GetInvoiceOK {
	return s.Response
}

// SetContentDisposition sets the value of ContentDisposition.
func (s *GetInvoiceOKHeaders) SetContentDisposition(val string) {
	s.ContentDisposition = val
}

// SetResponse sets the value of Response.
func (s *GetInvoiceOKHeaders) SetResponse(val GetInvoiceOK) {
	s.Response = val
}

func (*GetInvoiceOKHeaders) getInvoiceRes() {}

type GetOrderBadGateway Error

func (*GetOrderBadGateway) getOrderRes() {}

type GetOrderBadRequest Error

func (*GetOrderBadRequest) getOrderRes() {}

type GetOrderConflict Error

func (*GetOrderConflict) getOrderRes() {}

type GetOrderForbidden Error

func (*GetOrderForbidden) getOrderRes() {}

type GetOrderNotFound Error

func (*GetOrderNotFound) getOrderRes() {}

// Ref: #/components/schemas/LineItem
type LineItem struct {
	ProductId      string    `json:"productId"`
	Title          string    `json:"title"`
	Brand          string    `json:"brand"`
	Quantity       int       `json:"quantity"`
	Unit           string    `json:"unit"`
	Price          float64   `json:"price"`
	StoreLocation  string    `json:"storeLocation"`
	ExpirationDate time.Time `json:"expirationDate"`
	Image          string    `json:"image"`
}

// GetProductId returns the value of ProductId.
func (s *LineItem) GetProductId() string {
	return s.ProductId
}

// GetTitle returns the value of Title.
func (s *LineItem) GetTitle() string {
	return s.Title
}

// GetBrand returns the value of Brand.
func (s *LineItem) GetBrand() string {
	return s.Brand
}

// GetQuantity returns the value of Quantity.
func (s *LineItem) GetQuantity() int {
	return s.Quantity
}

// GetUnit returns the value of Unit.
func (s *LineItem) GetUnit() string {
	return s.Unit
}

// GetPrice returns the value of Price.
func (s *LineItem) GetPrice() float64 {
	return s.Price
}

// GetStoreLocation returns the value of StoreLocation.
func (s *LineItem) GetStoreLocation() string {
	return s.StoreLocation
}

// GetExpirationDate returns the value of ExpirationDate.
func (s *LineItem) GetExpirationDate() time.Time {
	return s.ExpirationDate
}

// GetImage returns the value of Image.
func (s *LineItem) GetImage() string {
	return s.Image
}

// SetProductId sets the value of ProductId.
func (s *LineItem) SetProductId(val string) {
	s.ProductId = val
}

// SetTitle sets the value of Title.
func (s *LineItem) SetTitle(val string) {
	s.Title = val
}

// SetBrand sets the value of Brand.
func (s *LineItem) SetBrand(val string) {
	s.Brand = val
}

// SetQuantity sets the value of Quantity.
func (s *LineItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetUnit sets the value of Unit.
func (s *LineItem) SetUnit(val string) {
	s.Unit = val
}

// SetPrice sets the value of Price.
func (s *LineItem) SetPrice(val float64) {
	s.Price = val
}

// SetStoreLocation sets the value of StoreLocation.
func (s *LineItem) SetStoreLocation(val string) {
	s.StoreLocation = val
}

// SetExpirationDate sets the value of ExpirationDate.
func (s *LineItem) SetExpirationDate(val time.Time) {
	s.ExpirationDate = val
}

// SetImage sets the value of Image.
func (s *LineItem) SetImage(val string) {
	s.Image = val
}

type ListOrdersBadGateway Error

func (*ListOrdersBadGateway) listOrdersRes() {}

type ListOrdersBadRequest Error

func (*ListOrdersBadRequest) listOrdersRes() {}

type ListOrdersConflict Error

func (*ListOrdersConflict) listOrdersRes() {}

type ListOrdersForbidden Error

func (*ListOrdersForbidden) listOrdersRes() {}

type ListOrdersNotFound Error

func (*ListOrdersNotFound) listOrdersRes() {}

type ListOrdersOKApplicationJSON []Order

func (*ListOrdersOKApplicationJSON) listOrdersRes() {}

// NewOptAddress returns new OptAddress with value set to v.
func NewOptAddress(v Address) OptAddress {
	return OptAddress{
		Value: v,
		Set:   true,
	}
}

// OptAddress is optional Address.
type OptAddress struct {
	Value Address
	Set   bool
}

// IsSet returns true if OptAddress was set.
func (o OptAddress) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptAddress) Reset() {
	var v Address
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptAddress) SetTo(v Address) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptAddress) Get() (v Address, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptAddress) Or(d Address) Address {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptNilString returns new OptNilString with value set to v.
func NewOptNilString(v string) OptNilString {
	return OptNilString{
		Value: v,
		Set:   true,
	}
}

// OptNilString is optional nullable string.
type OptNilString struct {
	Value string
	Set   bool
	Null  bool
}

// IsSet returns true if OptNilString was set.
func (o OptNilString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptNilString) Reset() {
	var v string
	o.Value = v
	o.Set = false
	o.Null = false
}

// SetTo sets value to v.
func (o *OptNilString) SetTo(v string) {
	o.Set = true
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o OptNilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *OptNilString) SetToNull() {
	o.Set = true
	o.Null = true
	var v string
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptNilString) Get() (v string, ok bool) {
	if o.Null {
		return v, false
	}
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptNilString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptPaymentMethod returns new OptPaymentMethod with value set to v.
func NewOptPaymentMethod(v PaymentMethod) OptPaymentMethod {
	return OptPaymentMethod{
		Value: v,
		Set:   true,
	}
}

// OptPaymentMethod is optional PaymentMethod.
type OptPaymentMethod struct {
	Value PaymentMethod
	Set   bool
}

// IsSet returns true if OptPaymentMethod was set.
func (o OptPaymentMethod) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptPaymentMethod) Reset() {
	var v PaymentMethod
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptPaymentMethod) SetTo(v PaymentMethod) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptPaymentMethod) Get() (v PaymentMethod, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptPaymentMethod) Or(d PaymentMethod) PaymentMethod {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptPaymentResult returns new OptPaymentResult with value set to v.
func NewOptPaymentResult(v PaymentResult) OptPaymentResult {
	return OptPaymentResult{
		Value: v,
		Set:   true,
	}
}

// OptPaymentResult is optional PaymentResult.
type OptPaymentResult struct {
	Value PaymentResult
	Set   bool
}

// IsSet returns true if OptPaymentResult was set.
func (o OptPaymentResult) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptPaymentResult) Reset() {
	var v PaymentResult
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptPaymentResult) SetTo(v PaymentResult) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptPaymentResult) Get() (v PaymentResult, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptPaymentResult) Or(d PaymentResult) PaymentResult {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptPaymentSession returns new OptPaymentSession with value set to v.
func NewOptPaymentSession(v PaymentSession) OptPaymentSession {
	return OptPaymentSession{
		Value: v,
		Set:   true,
	}
}

// OptPaymentSession is optional PaymentSession.
type OptPaymentSession struct {
	Value PaymentSession
	Set   bool
}

// IsSet returns true if OptPaymentSession was set.
func (o OptPaymentSession) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptPaymentSession) Reset() {
	var v PaymentSession
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptPaymentSession) SetTo(v PaymentSession) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptPaymentSession) Get() (v PaymentSession, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptPaymentSession) Or(d PaymentSession) PaymentSession {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID              string        `json:"id"`
	UserId          string        `json:"userId"`
	CartItems       []LineItem    `json:"cartItems"`
	AddressInfo     Address       `json:"addressInfo"`
	OrderStatus     OrderStatus   `json:"orderStatus"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	TotalAmount     float64       `json:"totalAmount"`
	OrderDate       time.Time     `json:"orderDate"`
	OrderUpdateDate time.Time     `json:"orderUpdateDate"`
	PaymentId       OptString     `json:"paymentId"`
	PaymentIntentId OptString     `json:"paymentIntentId"`
	FailureReason   OptString     `json:"failureReason"`
}

// GetID returns the value of ID.
func (s *Order) GetID() string {
	return s.ID
}

// GetUserId returns the value of UserId.
func (s *Order) GetUserId() string {
	return s.UserId
}

// GetCartItems returns the value of CartItems.
func (s *Order) GetCartItems() []LineItem {
	return s.CartItems
}

// GetAddressInfo returns the value of AddressInfo.
func (s *Order) GetAddressInfo() Address {
	return s.AddressInfo
}

// GetOrderStatus returns the value of OrderStatus.
func (s *Order) GetOrderStatus() OrderStatus {
	return s.OrderStatus
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *Order) GetPaymentMethod() PaymentMethod {
	return s.PaymentMethod
}

// GetPaymentStatus returns the value of PaymentStatus.
func (s *Order) GetPaymentStatus() PaymentStatus {
	return s.PaymentStatus
}

// GetTotalAmount returns the value of TotalAmount.
func (s *Order) GetTotalAmount() float64 {
	return s.TotalAmount
}

// GetOrderDate returns the value of OrderDate.
func (s *Order) GetOrderDate() time.Time {
	return s.OrderDate
}

// GetOrderUpdateDate returns the value of OrderUpdateDate.
func (s *Order) GetOrderUpdateDate() time.Time {
	return s.OrderUpdateDate
}

// GetPaymentId returns the value of PaymentId.
func (s *Order) GetPaymentId() OptString {
	return s.PaymentId
}

// GetPaymentIntentId returns the value of PaymentIntentId.
func (s *Order) GetPaymentIntentId() OptString {
	return s.PaymentIntentId
}

// GetFailureReason returns the value of FailureReason.
func (s *Order) GetFailureReason() OptString {
	return s.FailureReason
}

// SetID sets the value of ID.
func (s *Order) SetID(val string) {
	s.ID = val
}

// SetUserId sets the value of UserId.
func (s *Order) SetUserId(val string) {
	s.UserId = val
}

// SetCartItems sets the value of CartItems.
func (s *Order) SetCartItems(val []LineItem) {
	s.CartItems = val
}

// SetAddressInfo sets the value of AddressInfo.
func (s *Order) SetAddressInfo(val Address) {
	s.AddressInfo = val
}

// SetOrderStatus sets the value of OrderStatus.
func (s *Order) SetOrderStatus(val OrderStatus) {
	s.OrderStatus = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *Order) SetPaymentMethod(val PaymentMethod) {
	s.PaymentMethod = val
}

// SetPaymentStatus sets the value of PaymentStatus.
func (s *Order) SetPaymentStatus(val PaymentStatus) {
	s.PaymentStatus = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *Order) SetTotalAmount(val float64) {
	s.TotalAmount = val
}

// SetOrderDate sets the value of OrderDate.
func (s *Order) SetOrderDate(val time.Time) {
	s.OrderDate = val
}

// SetOrderUpdateDate sets the value of OrderUpdateDate.
func (s *Order) SetOrderUpdateDate(val time.Time) {
	s.OrderUpdateDate = val
}

// SetPaymentId sets the value of PaymentId.
func (s *Order) SetPaymentId(val OptString) {
	s.PaymentId = val
}

// SetPaymentIntentId sets the value of PaymentIntentId.
func (s *Order) SetPaymentIntentId(val OptString) {
	s.PaymentIntentId = val
}

// SetFailureReason sets the value of FailureReason.
func (s *Order) SetFailureReason(val OptString) {
	s.FailureReason = val
}

func (*Order) getOrderRes() {}

// Ref: #/components/schemas/OrderResult
type OrderResult struct {
	Order   Order             `json:"order"`
	Payment OptPaymentSession `json:"payment"`
}

// GetOrder returns the value of Order.
func (s *OrderResult) GetOrder() Order {
	return s.Order
}

// GetPayment returns the value of Payment.
func (s *OrderResult) GetPayment() OptPaymentSession {
	return s.Payment
}

// SetOrder sets the value of Order.
func (s *OrderResult) SetOrder(val Order) {
	s.Order = val
}

// SetPayment sets the value of Payment.
func (s *OrderResult) SetPayment(val OptPaymentSession) {
	s.Payment = val
}

func (*OrderResult) confirmPaymentRes()    {}
func (*OrderResult) createOrderRes()       {}
func (*OrderResult) retryPaymentRes()      {}
func (*OrderResult) updateOrderStatusRes() {}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCollected OrderStatus = "collected"
	OrderStatusRejected  OrderStatus = "rejected"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusCollected,
		OrderStatusRejected,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusPending:
		return []byte(s), nil
	case OrderStatusConfirmed:
		return []byte(s), nil
	case OrderStatusCollected:
		return []byte(s), nil
	case OrderStatusRejected:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusPending:
		*s = OrderStatusPending
		return nil
	case OrderStatusConfirmed:
		*s = OrderStatusConfirmed
		return nil
	case OrderStatusCollected:
		*s = OrderStatusCollected
		return nil
	case OrderStatusRejected:
		*s = OrderStatusRejected
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PaymentConfig
type PaymentConfig struct {
	Provider       string `json:"provider"`
	PublishableKey string `json:"publishableKey"`
	Currency       string `json:"currency"`
}

// GetProvider returns the value of Provider.
func (s *PaymentConfig) GetProvider() string {
	return s.Provider
}

// GetPublishableKey returns the value of PublishableKey.
func (s *PaymentConfig) GetPublishableKey() string {
	return s.PublishableKey
}

// GetCurrency returns the value of Currency.
func (s *PaymentConfig) GetCurrency() string {
	return s.Currency
}

// SetProvider sets the value of Provider.
func (s *PaymentConfig) SetProvider(val string) {
	s.Provider = val
}

// SetPublishableKey sets the value of PublishableKey.
func (s *PaymentConfig) SetPublishableKey(val string) {
	s.PublishableKey = val
}

// SetCurrency sets the value of Currency.
func (s *PaymentConfig) SetCurrency(val string) {
	s.Currency = val
}

// Ref: #/components/schemas/PaymentMethod
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodInPerson PaymentMethod = "in-person"
)

// AllValues returns all PaymentMethod values.
func (PaymentMethod) AllValues() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCard,
		PaymentMethodInPerson,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PaymentMethod) MarshalText() ([]byte, error) {
	switch s {
	case PaymentMethodCard:
		return []byte(s), nil
	case PaymentMethodInPerson:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaymentMethod) UnmarshalText(data []byte) error {
	switch PaymentMethod(data) {
	case PaymentMethodCard:
		*s = PaymentMethodCard
		return nil
	case PaymentMethodInPerson:
		*s = PaymentMethodInPerson
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PaymentResult
type PaymentResult string

const (
	PaymentResultSucceeded PaymentResult = "succeeded"
	PaymentResultFailed    PaymentResult = "failed"
)

// AllValues returns all PaymentResult values.
func (PaymentResult) AllValues() []PaymentResult {
	return []PaymentResult{
		PaymentResultSucceeded,
		PaymentResultFailed,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PaymentResult) MarshalText() ([]byte, error) {
	switch s {
	case PaymentResultSucceeded:
		return []byte(s), nil
	case PaymentResultFailed:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaymentResult) UnmarshalText(data []byte) error {
	switch PaymentResult(data) {
	case PaymentResultSucceeded:
		*s = PaymentResultSucceeded
		return nil
	case PaymentResultFailed:
		*s = PaymentResultFailed
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PaymentSession
type PaymentSession struct {
	IntentId       string    `json:"intentId"`
	ClientSecret   string    `json:"clientSecret"`
	PublishableKey OptString `json:"publishableKey"`
}

// GetIntentId returns the value of IntentId.
func (s *PaymentSession) GetIntentId() string {
	return s.IntentId
}

// GetClientSecret returns the value of ClientSecret.
func (s *PaymentSession) GetClientSecret() string {
	return s.ClientSecret
}

// GetPublishableKey returns the value of PublishableKey.
func (s *PaymentSession) GetPublishableKey() OptString {
	return s.PublishableKey
}

// SetIntentId sets the value of IntentId.
func (s *PaymentSession) SetIntentId(val string) {
	s.IntentId = val
}

// SetClientSecret sets the value of ClientSecret.
func (s *PaymentSession) SetClientSecret(val string) {
	s.ClientSecret = val
}

// SetPublishableKey sets the value of PublishableKey.
func (s *PaymentSession) SetPublishableKey(val OptString) {
	s.PublishableKey = val
}

// Ref: #/components/schemas/PaymentStatus
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// AllValues returns all PaymentStatus values.
func (PaymentStatus) AllValues() []PaymentStatus {
	return []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusCompleted,
		PaymentStatusFailed,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PaymentStatus) MarshalText() ([]byte, error) {
	switch s {
	case PaymentStatusPending:
		return []byte(s), nil
	case PaymentStatusCompleted:
		return []byte(s), nil
	case PaymentStatusFailed:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaymentStatus) UnmarshalText(data []byte) error {
	switch PaymentStatus(data) {
	case PaymentStatusPending:
		*s = PaymentStatusPending
		return nil
	case PaymentStatusCompleted:
		*s = PaymentStatusCompleted
		return nil
	case PaymentStatusFailed:
		*s = PaymentStatusFailed
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

type RetryPaymentBadGateway Error

func (*RetryPaymentBadGateway) retryPaymentRes() {}

type RetryPaymentBadRequest Error

func (*RetryPaymentBadRequest) retryPaymentRes() {}

type RetryPaymentConflict Error

func (*RetryPaymentConflict) retryPaymentRes() {}

type RetryPaymentForbidden Error

func (*RetryPaymentForbidden) retryPaymentRes() {}

type RetryPaymentNotFound Error

func (*RetryPaymentNotFound) retryPaymentRes() {}

// Ref: #/components/schemas/StockShortage
type StockShortage struct {
	ProductId string `json:"productId"`
	Title     string `json:"title"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// GetProductId returns the value of ProductId.
func (s *StockShortage) GetProductId() string {
	return s.ProductId
}

// GetTitle returns the value of Title.
func (s *StockShortage) GetTitle() string {
	return s.Title
}

// GetRequested returns the value of Requested.
func (s *StockShortage) GetRequested() int {
	return s.Requested
}

// GetAvailable returns the value of Available.
func (s *StockShortage) GetAvailable() int {
	return s.Available
}

// SetProductId sets the value of ProductId.
func (s *StockShortage) SetProductId(val string) {
	s.ProductId = val
}

// SetTitle sets the value of Title.
func (s *StockShortage) SetTitle(val string) {
	s.Title = val
}

// SetRequested sets the value of Requested.
func (s *StockShortage) SetRequested(val int) {
	s.Requested = val
}

// SetAvailable sets the value of Available.
func (s *StockShortage) SetAvailable(val int) {
	s.Available = val
}

type UpdateOrderStatusBadGateway Error

func (*UpdateOrderStatusBadGateway) updateOrderStatusRes() {}

type UpdateOrderStatusBadRequest Error

func (*UpdateOrderStatusBadRequest) updateOrderStatusRes() {}

type UpdateOrderStatusConflict Error

func (*UpdateOrderStatusConflict) updateOrderStatusRes() {}

type UpdateOrderStatusForbidden Error

func (*UpdateOrderStatusForbidden) updateOrderStatusRes() {}

type UpdateOrderStatusNotFound Error

func (*UpdateOrderStatusNotFound) updateOrderStatusRes() {}

// Ref: #/components/schemas/UpdateStatusRequest
type UpdateStatusRequest struct {
	OrderStatus OrderStatus `json:"orderStatus"`
}

// GetOrderStatus returns the value of OrderStatus.
func (s *UpdateStatusRequest) GetOrderStatus() OrderStatus {
	return s.OrderStatus
}

// SetOrderStatus sets the value of OrderStatus.
func (s *UpdateStatusRequest) SetOrderStatus(val OrderStatus) {
	s.OrderStatus = val
}
