package graphql

import (
	"github.com/graphql-go/graphql"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/service/crm"
)

// resolver связывает GraphQL-схему с бизнес-сервисом.
type resolver struct {
	svc    *crm.Service
	logger *log.Entry
}

// NewSchema строит GraphQL-схему CRM: типы записей, мутации создания и
// запросы со списками и фильтрами. Схема — единственный API-контракт сервиса.
func NewSchema(svc *crm.Service, logger *log.Entry) (graphql.Schema, error) {
	if logger == nil {
		logger = log.New().WithField("component", "graphql")
	}
	r := &resolver{svc: svc, logger: logger}

	customerType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"stock": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	orderType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"customer":    &graphql.Field{Type: customerType},
			"products":    &graphql.Field{Type: graphql.NewList(productType)},
			"orderDate":   &graphql.Field{Type: graphql.DateTime},
			"totalAmount": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	customerInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	createProductInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: 0},
		},
	})

	createOrderInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateOrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"productIds": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.ID))},
			"orderDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	customerFilterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nameContains":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nameStartsWith": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"emailContains":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	productFilterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nameContains":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nameStartsWith": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"price":          &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"priceLte":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"priceGte":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	orderFilterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerNameContains": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"orderDate":            &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"orderDateLte":         &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"orderDateGte":         &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"totalAmount":          &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"totalAmountLte":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"totalAmountGte":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	createCustomerPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: graphql.Fields{
			"customer": &graphql.Field{Type: customerType},
			"message":  &graphql.Field{Type: graphql.String},
		},
	})

	bulkCreateCustomersPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: graphql.Fields{
			"customers": &graphql.Field{Type: graphql.NewList(customerType)},
			"errors":    &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	createProductPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: graphql.Fields{
			"product": &graphql.Field{Type: productType},
		},
	})

	createOrderPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: graphql.Fields{
			"order": &graphql.Field{Type: orderType},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInput)},
				},
				Resolve: r.createCustomer,
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewList(customerInput)},
				},
				Resolve: r.bulkCreateCustomers,
			},
			"createProduct": &graphql.Field{
				Type: createProductPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProductInput)},
				},
				Resolve: r.createProduct,
			},
			"createOrder": &graphql.Field{
				Type: createOrderPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createOrderInput)},
				},
				Resolve: r.createOrder,
			},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allCustomers": &graphql.Field{
				Type:    graphql.NewList(customerType),
				Resolve: r.allCustomers,
			},
			"allProducts": &graphql.Field{
				Type:    graphql.NewList(productType),
				Resolve: r.allProducts,
			},
			"allOrders": &graphql.Field{
				Type:    graphql.NewList(orderType),
				Resolve: r.allOrders,
			},
			"customers": &graphql.Field{
				Type: graphql.NewList(customerType),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: customerFilterInput},
				},
				Resolve: r.customers,
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: productFilterInput},
				},
				Resolve: r.products,
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: orderFilterInput},
				},
				Resolve: r.orders,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func customerPayload(c domain.Customer) map[string]interface{} {
	return map[string]interface{}{
		"id":        c.ID,
		"name":      c.Name,
		"email":     c.Email,
		"phone":     c.Phone,
		"createdAt": c.CreatedAt,
	}
}

// productPayload отдаёт цену как Float: это контракт API,
// точное десятичное значение живёт только внутри системы.
func productPayload(p domain.Product) map[string]interface{} {
	price, _ := p.Price.Float64()
	return map[string]interface{}{
		"id":    p.ID,
		"name":  p.Name,
		"price": price,
		"stock": int(p.Stock),
	}
}

// orderPayload материализует вложенные customer и products заказа.
func (r *resolver) orderPayload(o domain.Order) (map[string]interface{}, error) {
	customer, err := r.svc.GetCustomer(o.CustomerID)
	if err != nil {
		return nil, apiError(err)
	}

	products := make([]map[string]interface{}, 0, len(o.ProductIDs))
	for _, productID := range o.ProductIDs {
		product, err := r.svc.GetProduct(productID)
		if err != nil {
			return nil, apiError(err)
		}
		products = append(products, productPayload(product))
	}

	total, _ := o.TotalAmount.Float64()
	return map[string]interface{}{
		"id":          o.ID,
		"customer":    customerPayload(customer),
		"products":    products,
		"orderDate":   o.OrderDate,
		"totalAmount": total,
	}, nil
}
