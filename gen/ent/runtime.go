// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lucasveras/faturahub/db/ent/schema"
	"github.com/lucasveras/faturahub/gen/ent/billingunit"
	"github.com/lucasveras/faturahub/gen/ent/customer"
	"github.com/lucasveras/faturahub/gen/ent/importtask"
	"github.com/lucasveras/faturahub/gen/ent/invoice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billingunitFields := schema.BillingUnit{}.Fields()
	_ = billingunitFields
	// billingunitDescCode is the schema descriptor for code field.
	billingunitDescCode := billingunitFields[2].Descriptor()
	// billingunit.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	billingunit.CodeValidator = func() func(string) error {
		validators := billingunitDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// billingunitDescAddress is the schema descriptor for address field.
	billingunitDescAddress := billingunitFields[3].Descriptor()
	// billingunit.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	billingunit.AddressValidator = billingunitDescAddress.Validators[0].(func(string) error)
	// billingunitDescKind is the schema descriptor for kind field.
	billingunitDescKind := billingunitFields[4].Descriptor()
	// billingunit.DefaultKind holds the default value on creation for the kind field.
	billingunit.DefaultKind = billingunitDescKind.Default.(string)
	// billingunit.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	billingunit.KindValidator = billingunitDescKind.Validators[0].(func(string) error)
	// billingunitDescStartedAt is the schema descriptor for started_at field.
	billingunitDescStartedAt := billingunitFields[5].Descriptor()
	// billingunit.DefaultStartedAt holds the default value on creation for the started_at field.
	billingunit.DefaultStartedAt = billingunitDescStartedAt.Default.(func() time.Time)
	// billingunitDescCreatedAt is the schema descriptor for created_at field.
	billingunitDescCreatedAt := billingunitFields[7].Descriptor()
	// billingunit.DefaultCreatedAt holds the default value on creation for the created_at field.
	billingunit.DefaultCreatedAt = billingunitDescCreatedAt.Default.(func() time.Time)
	// billingunitDescUpdatedAt is the schema descriptor for updated_at field.
	billingunitDescUpdatedAt := billingunitFields[8].Descriptor()
	// billingunit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	billingunit.DefaultUpdatedAt = billingunitDescUpdatedAt.Default.(func() time.Time)
	// billingunit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	billingunit.UpdateDefaultUpdatedAt = billingunitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billingunitDescID is the schema descriptor for id field.
	billingunitDescID := billingunitFields[0].Descriptor()
	// billingunit.DefaultID holds the default value on creation for the id field.
	billingunit.DefaultID = billingunitDescID.Default.(func() uuid.UUID)
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescTaxID is the schema descriptor for tax_id field.
	customerDescTaxID := customerFields[2].Descriptor()
	// customer.TaxIDValidator is a validator for the "tax_id" field. It is called by the builders before save.
	customer.TaxIDValidator = func() func(string) error {
		validators := customerDescTaxID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(tax_id string) error {
			for _, fn := range fns {
				if err := fn(tax_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// customerDescHolderTaxID is the schema descriptor for holder_tax_id field.
	customerDescHolderTaxID := customerFields[3].Descriptor()
	// customer.HolderTaxIDValidator is a validator for the "holder_tax_id" field. It is called by the builders before save.
	customer.HolderTaxIDValidator = customerDescHolderTaxID.Validators[0].(func(string) error)
	// customerDescAddress is the schema descriptor for address field.
	customerDescAddress := customerFields[5].Descriptor()
	// customer.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	customer.AddressValidator = customerDescAddress.Validators[0].(func(string) error)
	// customerDescPhone is the schema descriptor for phone field.
	customerDescPhone := customerFields[6].Descriptor()
	// customer.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	customer.PhoneValidator = customerDescPhone.Validators[0].(func(string) error)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[8].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[9].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	importtaskFields := schema.ImportTask{}.Fields()
	_ = importtaskFields
	// importtaskDescStatus is the schema descriptor for status field.
	importtaskDescStatus := importtaskFields[3].Descriptor()
	// importtask.DefaultStatus holds the default value on creation for the status field.
	importtask.DefaultStatus = importtaskDescStatus.Default.(string)
	// importtask.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importtask.StatusValidator = importtaskDescStatus.Validators[0].(func(string) error)
	// importtaskDescCreatedAt is the schema descriptor for created_at field.
	importtaskDescCreatedAt := importtaskFields[6].Descriptor()
	// importtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	importtask.DefaultCreatedAt = importtaskDescCreatedAt.Default.(func() time.Time)
	// importtaskDescUpdatedAt is the schema descriptor for updated_at field.
	importtaskDescUpdatedAt := importtaskFields[7].Descriptor()
	// importtask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	importtask.DefaultUpdatedAt = importtaskDescUpdatedAt.Default.(func() time.Time)
	// importtask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	importtask.UpdateDefaultUpdatedAt = importtaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// importtaskDescID is the schema descriptor for id field.
	importtaskDescID := importtaskFields[0].Descriptor()
	// importtask.DefaultID holds the default value on creation for the id field.
	importtask.DefaultID = importtaskDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescDocumentRef is the schema descriptor for document_ref field.
	invoiceDescDocumentRef := invoiceFields[5].Descriptor()
	// invoice.DocumentRefValidator is a validator for the "document_ref" field. It is called by the builders before save.
	invoice.DocumentRefValidator = invoiceDescDocumentRef.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[7].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[8].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
}
