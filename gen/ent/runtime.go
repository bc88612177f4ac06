// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codemarcinu/pantry-tracker/db/ent/schema"
	"github.com/codemarcinu/pantry-tracker/gen/ent/category"
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[4].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescUpdatedAt is the schema descriptor for updated_at field.
	categoryDescUpdatedAt := categoryFields[5].Descriptor()
	// category.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	category.DefaultUpdatedAt = categoryDescUpdatedAt.Default.(func() time.Time)
	// category.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	category.UpdateDefaultUpdatedAt = categoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	consumptioneventFields := schema.ConsumptionEvent{}.Fields()
	_ = consumptioneventFields
	// consumptioneventDescConsumedAt is the schema descriptor for consumed_at field.
	consumptioneventDescConsumedAt := consumptioneventFields[3].Descriptor()
	// consumptionevent.DefaultConsumedAt holds the default value on creation for the consumed_at field.
	consumptionevent.DefaultConsumedAt = consumptioneventDescConsumedAt.Default.(func() time.Time)
	// consumptioneventDescNotes is the schema descriptor for notes field.
	consumptioneventDescNotes := consumptioneventFields[4].Descriptor()
	// consumptionevent.DefaultNotes holds the default value on creation for the notes field.
	consumptionevent.DefaultNotes = consumptioneventDescNotes.Default.(string)
	// consumptioneventDescCreatedAt is the schema descriptor for created_at field.
	consumptioneventDescCreatedAt := consumptioneventFields[5].Descriptor()
	// consumptionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	consumptionevent.DefaultCreatedAt = consumptioneventDescCreatedAt.Default.(func() time.Time)
	// consumptioneventDescID is the schema descriptor for id field.
	consumptioneventDescID := consumptioneventFields[0].Descriptor()
	// consumptionevent.DefaultID holds the default value on creation for the id field.
	consumptionevent.DefaultID = consumptioneventDescID.Default.(func() uuid.UUID)
	correctionpatternFields := schema.CorrectionPattern{}.Fields()
	_ = correctionpatternFields
	// correctionpatternDescErrorPattern is the schema descriptor for error_pattern field.
	correctionpatternDescErrorPattern := correctionpatternFields[1].Descriptor()
	// correctionpattern.ErrorPatternValidator is a validator for the "error_pattern" field. It is called by the builders before save.
	correctionpattern.ErrorPatternValidator = correctionpatternDescErrorPattern.Validators[0].(func(string) error)
	// correctionpatternDescCorrectPattern is the schema descriptor for correct_pattern field.
	correctionpatternDescCorrectPattern := correctionpatternFields[2].Descriptor()
	// correctionpattern.CorrectPatternValidator is a validator for the "correct_pattern" field. It is called by the builders before save.
	correctionpattern.CorrectPatternValidator = correctionpatternDescCorrectPattern.Validators[0].(func(string) error)
	// correctionpatternDescIsRegex is the schema descriptor for is_regex field.
	correctionpatternDescIsRegex := correctionpatternFields[3].Descriptor()
	// correctionpattern.DefaultIsRegex holds the default value on creation for the is_regex field.
	correctionpattern.DefaultIsRegex = correctionpatternDescIsRegex.Default.(bool)
	// correctionpatternDescConfidence is the schema descriptor for confidence field.
	correctionpatternDescConfidence := correctionpatternFields[4].Descriptor()
	// correctionpattern.DefaultConfidence holds the default value on creation for the confidence field.
	correctionpattern.DefaultConfidence = correctionpatternDescConfidence.Default.(float64)
	// correctionpatternDescTimesApplied is the schema descriptor for times_applied field.
	correctionpatternDescTimesApplied := correctionpatternFields[5].Descriptor()
	// correctionpattern.DefaultTimesApplied holds the default value on creation for the times_applied field.
	correctionpattern.DefaultTimesApplied = correctionpatternDescTimesApplied.Default.(int)
	// correctionpatternDescSampleCount is the schema descriptor for sample_count field.
	correctionpatternDescSampleCount := correctionpatternFields[6].Descriptor()
	// correctionpattern.DefaultSampleCount holds the default value on creation for the sample_count field.
	correctionpattern.DefaultSampleCount = correctionpatternDescSampleCount.Default.(int)
	// correctionpatternDescIsActive is the schema descriptor for is_active field.
	correctionpatternDescIsActive := correctionpatternFields[7].Descriptor()
	// correctionpattern.DefaultIsActive holds the default value on creation for the is_active field.
	correctionpattern.DefaultIsActive = correctionpatternDescIsActive.Default.(bool)
	// correctionpatternDescHumanDeactivated is the schema descriptor for human_deactivated field.
	correctionpatternDescHumanDeactivated := correctionpatternFields[8].Descriptor()
	// correctionpattern.DefaultHumanDeactivated holds the default value on creation for the human_deactivated field.
	correctionpattern.DefaultHumanDeactivated = correctionpatternDescHumanDeactivated.Default.(bool)
	// correctionpatternDescCreatedAt is the schema descriptor for created_at field.
	correctionpatternDescCreatedAt := correctionpatternFields[9].Descriptor()
	// correctionpattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	correctionpattern.DefaultCreatedAt = correctionpatternDescCreatedAt.Default.(func() time.Time)
	// correctionpatternDescUpdatedAt is the schema descriptor for updated_at field.
	correctionpatternDescUpdatedAt := correctionpatternFields[10].Descriptor()
	// correctionpattern.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	correctionpattern.DefaultUpdatedAt = correctionpatternDescUpdatedAt.Default.(func() time.Time)
	// correctionpattern.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	correctionpattern.UpdateDefaultUpdatedAt = correctionpatternDescUpdatedAt.UpdateDefault.(func() time.Time)
	// correctionpatternDescID is the schema descriptor for id field.
	correctionpatternDescID := correctionpatternFields[0].Descriptor()
	// correctionpattern.DefaultID holds the default value on creation for the id field.
	correctionpattern.DefaultID = correctionpatternDescID.Default.(func() uuid.UUID)
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescUnit is the schema descriptor for unit field.
	inventoryitemDescUnit := inventoryitemFields[5].Descriptor()
	// inventoryitem.DefaultUnit holds the default value on creation for the unit field.
	inventoryitem.DefaultUnit = inventoryitemDescUnit.Default.(string)
	// inventoryitem.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	inventoryitem.UnitValidator = inventoryitemDescUnit.Validators[0].(func(string) error)
	// inventoryitemDescStorageLocation is the schema descriptor for storage_location field.
	inventoryitemDescStorageLocation := inventoryitemFields[6].Descriptor()
	// inventoryitem.DefaultStorageLocation holds the default value on creation for the storage_location field.
	inventoryitem.DefaultStorageLocation = inventoryitemDescStorageLocation.Default.(string)
	// inventoryitem.StorageLocationValidator is a validator for the "storage_location" field. It is called by the builders before save.
	inventoryitem.StorageLocationValidator = inventoryitemDescStorageLocation.Validators[0].(func(string) error)
	// inventoryitemDescBatchID is the schema descriptor for batch_id field.
	inventoryitemDescBatchID := inventoryitemFields[7].Descriptor()
	// inventoryitem.DefaultBatchID holds the default value on creation for the batch_id field.
	inventoryitem.DefaultBatchID = inventoryitemDescBatchID.Default.(string)
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemFields[8].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemFields[9].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescID is the schema descriptor for id field.
	inventoryitemDescID := inventoryitemFields[0].Descriptor()
	// inventoryitem.DefaultID holds the default value on creation for the id field.
	inventoryitem.DefaultID = inventoryitemDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[1].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
	// productDescNormalizedName is the schema descriptor for normalized_name field.
	productDescNormalizedName := productFields[2].Descriptor()
	// product.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	product.NormalizedNameValidator = productDescNormalizedName.Validators[0].(func(string) error)
	// productDescBrand is the schema descriptor for brand field.
	productDescBrand := productFields[3].Descriptor()
	// product.DefaultBrand holds the default value on creation for the brand field.
	product.DefaultBrand = productDescBrand.Default.(string)
	// productDescIsActive is the schema descriptor for is_active field.
	productDescIsActive := productFields[6].Descriptor()
	// product.DefaultIsActive holds the default value on creation for the is_active field.
	product.DefaultIsActive = productDescIsActive.Default.(bool)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[8].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[9].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescCurrency is the schema descriptor for currency field.
	receiptDescCurrency := receiptFields[4].Descriptor()
	// receipt.DefaultCurrency holds the default value on creation for the currency field.
	receipt.DefaultCurrency = receiptDescCurrency.Default.(string)
	// receipt.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	receipt.CurrencyValidator = func() func(string) error {
		validators := receiptDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptDescSourcePath is the schema descriptor for source_path field.
	receiptDescSourcePath := receiptFields[6].Descriptor()
	// receipt.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	receipt.SourcePathValidator = receiptDescSourcePath.Validators[0].(func(string) error)
	// receiptDescContentHash is the schema descriptor for content_hash field.
	receiptDescContentHash := receiptFields[7].Descriptor()
	// receipt.DefaultContentHash holds the default value on creation for the content_hash field.
	receipt.DefaultContentHash = receiptDescContentHash.Default.(string)
	// receiptDescStatus is the schema descriptor for status field.
	receiptDescStatus := receiptFields[8].Descriptor()
	// receipt.DefaultStatus holds the default value on creation for the status field.
	receipt.DefaultStatus = receiptDescStatus.Default.(string)
	// receipt.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	receipt.StatusValidator = receiptDescStatus.Validators[0].(func(string) error)
	// receiptDescProcessingNotes is the schema descriptor for processing_notes field.
	receiptDescProcessingNotes := receiptFields[9].Descriptor()
	// receipt.DefaultProcessingNotes holds the default value on creation for the processing_notes field.
	receipt.DefaultProcessingNotes = receiptDescProcessingNotes.Default.(string)
	// receiptDescCancelled is the schema descriptor for cancelled field.
	receiptDescCancelled := receiptFields[11].Descriptor()
	// receipt.DefaultCancelled holds the default value on creation for the cancelled field.
	receipt.DefaultCancelled = receiptDescCancelled.Default.(bool)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[12].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[13].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	receiptlineitemFields := schema.ReceiptLineItem{}.Fields()
	_ = receiptlineitemFields
	// receiptlineitemDescRawText is the schema descriptor for raw_text field.
	receiptlineitemDescRawText := receiptlineitemFields[3].Descriptor()
	// receiptlineitem.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	receiptlineitem.RawTextValidator = receiptlineitemDescRawText.Validators[0].(func(string) error)
	// receiptlineitemDescProductName is the schema descriptor for product_name field.
	receiptlineitemDescProductName := receiptlineitemFields[4].Descriptor()
	// receiptlineitem.ProductNameValidator is a validator for the "product_name" field. It is called by the builders before save.
	receiptlineitem.ProductNameValidator = receiptlineitemDescProductName.Validators[0].(func(string) error)
	// receiptlineitemDescVatCode is the schema descriptor for vat_code field.
	receiptlineitemDescVatCode := receiptlineitemFields[8].Descriptor()
	// receiptlineitem.VatCodeValidator is a validator for the "vat_code" field. It is called by the builders before save.
	receiptlineitem.VatCodeValidator = receiptlineitemDescVatCode.Validators[0].(func(string) error)
	// receiptlineitemDescID is the schema descriptor for id field.
	receiptlineitemDescID := receiptlineitemFields[0].Descriptor()
	// receiptlineitem.DefaultID holds the default value on creation for the id field.
	receiptlineitem.DefaultID = receiptlineitemDescID.Default.(func() uuid.UUID)
	trainingsampleFields := schema.TrainingSample{}.Fields()
	_ = trainingsampleFields
	// trainingsampleDescCreatedAt is the schema descriptor for created_at field.
	trainingsampleDescCreatedAt := trainingsampleFields[4].Descriptor()
	// trainingsample.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingsample.DefaultCreatedAt = trainingsampleDescCreatedAt.Default.(func() time.Time)
	// trainingsampleDescID is the schema descriptor for id field.
	trainingsampleDescID := trainingsampleFields[0].Descriptor()
	// trainingsample.DefaultID holds the default value on creation for the id field.
	trainingsample.DefaultID = trainingsampleDescID.Default.(func() uuid.UUID)
}
