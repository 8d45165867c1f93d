package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/service/crm"
)

func (r *resolver) createCustomer(p graphql.ResolveParams) (interface{}, error) {
	input, err := inputObject(p.Args)
	if err != nil {
		return nil, err
	}

	customer, message, err := r.svc.CreateCustomer(customerInputFrom(input))
	if err != nil {
		return nil, apiError(err)
	}

	return map[string]interface{}{
		"customer": customerPayload(customer),
		"message":  message,
	}, nil
}

func (r *resolver) bulkCreateCustomers(p graphql.ResolveParams) (interface{}, error) {
	items, _ := p.Args["input"].([]interface{})

	inputs := make([]crm.CustomerInput, 0, len(items))
	for _, item := range items {
		m, _ := item.(map[string]interface{})
		inputs = append(inputs, customerInputFrom(m))
	}

	created, errMessages := r.svc.BulkCreateCustomers(inputs)

	customers := make([]map[string]interface{}, 0, len(created))
	for _, customer := range created {
		customers = append(customers, customerPayload(customer))
	}

	return map[string]interface{}{
		"customers": customers,
		"errors":    errMessages,
	}, nil
}

func (r *resolver) createProduct(p graphql.ResolveParams) (interface{}, error) {
	input, err := inputObject(p.Args)
	if err != nil {
		return nil, err
	}

	product, err := r.svc.CreateProduct(crm.ProductInput{
		Name:  stringArg(input, "name"),
		Price: decimalArg(input, "price"),
		Stock: int32(intArg(input, "stock")),
	})
	if err != nil {
		return nil, apiError(err)
	}

	return map[string]interface{}{
		"product": productPayload(product),
	}, nil
}

func (r *resolver) createOrder(p graphql.ResolveParams) (interface{}, error) {
	input, err := inputObject(p.Args)
	if err != nil {
		return nil, err
	}

	order, err := r.svc.CreateOrder(crm.OrderInput{
		CustomerID: stringArg(input, "customerId"),
		ProductIDs: stringListArg(input, "productIds"),
		OrderDate:  timeArg(input, "orderDate"),
	})
	if err != nil {
		return nil, apiError(err)
	}

	payload, err := r.orderPayload(order)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"order": payload}, nil
}

func (r *resolver) allCustomers(graphql.ResolveParams) (interface{}, error) {
	return r.listCustomers(domain.CustomerFilter{})
}

func (r *resolver) allProducts(graphql.ResolveParams) (interface{}, error) {
	return r.listProducts(domain.ProductFilter{})
}

func (r *resolver) allOrders(graphql.ResolveParams) (interface{}, error) {
	return r.listOrders(domain.OrderFilter{})
}

func (r *resolver) customers(p graphql.ResolveParams) (interface{}, error) {
	filter, _ := p.Args["filter"].(map[string]interface{})
	return r.listCustomers(domain.CustomerFilter{
		Name:           stringArg(filter, "name"),
		NameContains:   stringArg(filter, "nameContains"),
		NameStartsWith: stringArg(filter, "nameStartsWith"),
		Email:          stringArg(filter, "email"),
		EmailContains:  stringArg(filter, "emailContains"),
	})
}

func (r *resolver) products(p graphql.ResolveParams) (interface{}, error) {
	filter, _ := p.Args["filter"].(map[string]interface{})
	return r.listProducts(domain.ProductFilter{
		Name:           stringArg(filter, "name"),
		NameContains:   stringArg(filter, "nameContains"),
		NameStartsWith: stringArg(filter, "nameStartsWith"),
		Price:          decimalPtrArg(filter, "price"),
		PriceLTE:       decimalPtrArg(filter, "priceLte"),
		PriceGTE:       decimalPtrArg(filter, "priceGte"),
	})
}

func (r *resolver) orders(p graphql.ResolveParams) (interface{}, error) {
	filter, _ := p.Args["filter"].(map[string]interface{})
	return r.listOrders(domain.OrderFilter{
		CustomerNameContains: stringArg(filter, "customerNameContains"),
		OrderDate:            timeArg(filter, "orderDate"),
		OrderDateLTE:         timeArg(filter, "orderDateLte"),
		OrderDateGTE:         timeArg(filter, "orderDateGte"),
		TotalAmount:          decimalPtrArg(filter, "totalAmount"),
		TotalAmountLTE:       decimalPtrArg(filter, "totalAmountLte"),
		TotalAmountGTE:       decimalPtrArg(filter, "totalAmountGte"),
	})
}

func (r *resolver) listCustomers(filter domain.CustomerFilter) (interface{}, error) {
	customers, err := r.svc.ListCustomers(filter)
	if err != nil {
		r.logger.WithError(err).Error("failed to list customers")
		return nil, apiError(err)
	}

	result := make([]map[string]interface{}, 0, len(customers))
	for _, customer := range customers {
		result = append(result, customerPayload(customer))
	}
	return result, nil
}

func (r *resolver) listProducts(filter domain.ProductFilter) (interface{}, error) {
	products, err := r.svc.ListProducts(filter)
	if err != nil {
		r.logger.WithError(err).Error("failed to list products")
		return nil, apiError(err)
	}

	result := make([]map[string]interface{}, 0, len(products))
	for _, product := range products {
		result = append(result, productPayload(product))
	}
	return result, nil
}

func (r *resolver) listOrders(filter domain.OrderFilter) (interface{}, error) {
	orders, err := r.svc.ListOrders(filter)
	if err != nil {
		r.logger.WithError(err).Error("failed to list orders")
		return nil, apiError(err)
	}

	result := make([]map[string]interface{}, 0, len(orders))
	for _, order := range orders {
		payload, err := r.orderPayload(order)
		if err != nil {
			return nil, err
		}
		result = append(result, payload)
	}
	return result, nil
}

func customerInputFrom(m map[string]interface{}) crm.CustomerInput {
	return crm.CustomerInput{
		Name:  stringArg(m, "name"),
		Email: stringArg(m, "email"),
		Phone: stringArg(m, "phone"),
	}
}
