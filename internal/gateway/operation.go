package gateway

import "net/http"

// Operation names a gateway operation, e.g. "customers.create".
type Operation string

const (
	OpCreateCustomer Operation = "customers.create"
	OpListCustomers  Operation = "customers.list"
	OpGetCustomer    Operation = "customers.get"
	OpUpdateCustomer Operation = "customers.update"
	OpDeleteCustomer Operation = "customers.delete"

	OpCreateMandate Operation = "mandates.create"
	OpListMandates  Operation = "mandates.list"
	OpGetMandate    Operation = "mandates.get"
	OpRevokeMandate Operation = "mandates.revoke"

	OpCreateSubscription Operation = "subscriptions.create"
	OpListSubscriptions  Operation = "subscriptions.list"
	OpGetSubscription    Operation = "subscriptions.get"
	OpUpdateSubscription Operation = "subscriptions.update"
	OpCancelSubscription Operation = "subscriptions.cancel"
)

// resource is the collection an operation targets.
type resource string

const (
	customers     resource = "customers"
	mandates      resource = "mandates"
	subscriptions resource = "subscriptions"
)

// endpoint describes how an operation maps onto Mollie.
type endpoint struct {
	method   string
	resource resource
	withID   bool // addresses a single resource, not the collection
	withBody bool
	list     bool
	title    string
}

var operations = map[Operation]endpoint{
	OpCreateCustomer: {method: http.MethodPost, resource: customers, withBody: true, title: "Failed to create customer"},
	OpListCustomers:  {method: http.MethodGet, resource: customers, list: true, title: "Failed to list customers"},
	OpGetCustomer:    {method: http.MethodGet, resource: customers, withID: true, title: "Failed to get customer"},
	OpUpdateCustomer: {method: http.MethodPatch, resource: customers, withID: true, withBody: true, title: "Failed to update customer"},
	OpDeleteCustomer: {method: http.MethodDelete, resource: customers, withID: true, title: "Failed to delete customer"},

	OpCreateMandate: {method: http.MethodPost, resource: mandates, withBody: true, title: "Failed to create mandate"},
	OpListMandates:  {method: http.MethodGet, resource: mandates, list: true, title: "Failed to list mandates"},
	OpGetMandate:    {method: http.MethodGet, resource: mandates, withID: true, title: "Failed to get mandate"},
	OpRevokeMandate: {method: http.MethodDelete, resource: mandates, withID: true, title: "Failed to revoke mandate"},

	OpCreateSubscription: {method: http.MethodPost, resource: subscriptions, withBody: true, title: "Failed to create subscription"},
	OpListSubscriptions:  {method: http.MethodGet, resource: subscriptions, list: true, title: "Failed to list subscriptions"},
	OpGetSubscription:    {method: http.MethodGet, resource: subscriptions, withID: true, title: "Failed to get subscription"},
	OpUpdateSubscription: {method: http.MethodPatch, resource: subscriptions, withID: true, withBody: true, title: "Failed to update subscription"},
	OpCancelSubscription: {method: http.MethodDelete, resource: subscriptions, withID: true, title: "Failed to cancel subscription"},
}

// Operations lists every supported operation.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	return ops
}

// Title is the fixed failure label of the operation.
func (op Operation) Title() string {
	return operations[op].title
}

// Method is the upstream HTTP method of the operation.
func (op Operation) Method() string {
	return operations[op].method
}

func (op Operation) valid() bool {
	_, ok := operations[op]
	return ok
}

// nested reports whether the operation lives under a customer.
func (s endpoint) nested() bool {
	return s.resource != customers
}

// needsCustomer reports whether the customer id is a required path param.
func (s endpoint) needsCustomer() bool {
	return s.nested() || s.withID
}

// needsNestedID reports whether a mandate or subscription id is required.
func (s endpoint) needsNestedID() bool {
	return s.nested() && s.withID
}

// missingTitle is the validation label for absent path params.
func (s endpoint) missingTitle() string {
	switch {
	case s.needsNestedID() && s.resource == mandates:
		return "Missing customer ID or mandate ID"
	case s.needsNestedID() && s.resource == subscriptions:
		return "Missing customer ID or subscription ID"
	default:
		return "Missing customer ID"
	}
}
