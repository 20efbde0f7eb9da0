package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// LogisticProvider is a shipping company; RUC is its tax registration number.
type LogisticProvider struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CompanyName  string             `json:"company_name" bson:"company_name"`
	RUC          string             `json:"ruc" bson:"ruc"`
	ContactEmail string             `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	Services     []string           `json:"services,omitempty" bson:"services,omitempty"`
}

type LogisticProviderUpdate struct {
	CompanyName  *string
	RUC          *string
	ContactEmail *string
	Services     *[]string
}
