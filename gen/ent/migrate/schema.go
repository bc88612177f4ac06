// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_categories_subcategories",
				Columns:    []*schema.Column{CategoriesColumns[5]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "category_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[5]},
			},
		},
	}
	// ConsumptionEventsColumns holds the columns for the "consumption_events" table.
	ConsumptionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "consumed_qty", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,3)"}},
		{Name: "consumed_at", Type: field.TypeTime},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "inventory_item_id", Type: field.TypeUUID},
	}
	// ConsumptionEventsTable holds the schema information for the "consumption_events" table.
	ConsumptionEventsTable = &schema.Table{
		Name:       "consumption_events",
		Columns:    ConsumptionEventsColumns,
		PrimaryKey: []*schema.Column{ConsumptionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "consumption_events_inventory_items_consumption_events",
				Columns:    []*schema.Column{ConsumptionEventsColumns[5]},
				RefColumns: []*schema.Column{InventoryItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "consumptionevent_inventory_item_id",
				Unique:  false,
				Columns: []*schema.Column{ConsumptionEventsColumns[5]},
			},
			{
				Name:    "consumptionevent_consumed_at",
				Unique:  false,
				Columns: []*schema.Column{ConsumptionEventsColumns[2]},
			},
		},
	}
	// OcrCorrectionPatternsColumns holds the columns for the "ocr_correction_patterns" table.
	OcrCorrectionPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "error_pattern", Type: field.TypeString, Unique: true},
		{Name: "correct_pattern", Type: field.TypeString},
		{Name: "is_regex", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.9},
		{Name: "times_applied", Type: field.TypeInt, Default: 0},
		{Name: "sample_count", Type: field.TypeInt, Default: 1},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "human_deactivated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OcrCorrectionPatternsTable holds the schema information for the "ocr_correction_patterns" table.
	OcrCorrectionPatternsTable = &schema.Table{
		Name:       "ocr_correction_patterns",
		Columns:    OcrCorrectionPatternsColumns,
		PrimaryKey: []*schema.Column{OcrCorrectionPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "correctionpattern_is_active",
				Unique:  false,
				Columns: []*schema.Column{OcrCorrectionPatternsColumns[7]},
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "purchase_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "expiry_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "quantity_remaining", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,3)"}},
		{Name: "unit", Type: field.TypeString, Default: "szt"},
		{Name: "storage_location", Type: field.TypeString, Default: "pantry"},
		{Name: "batch_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "product_id", Type: field.TypeUUID},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inventory_items_products_inventory_items",
				Columns:    []*schema.Column{InventoryItemsColumns[9]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inventoryitem_product_id",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[9]},
			},
			{
				Name:    "inventoryitem_expiry_date",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[2]},
			},
			{
				Name:    "inventoryitem_purchase_date",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[1]},
			},
			{
				Name:    "inventoryitem_batch_id",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[6]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString, Unique: true},
		{Name: "brand", Type: field.TypeString, Default: ""},
		{Name: "barcode", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeUUID, Nullable: true},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_categories_products",
				Columns:    []*schema.Column{ProductsColumns[9]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_name",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[1]},
			},
			{
				Name:    "product_is_active",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[5]},
			},
			{
				Name:    "product_category_id",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[9]},
			},
		},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "store_name", Type: field.TypeString, Nullable: true},
		{Name: "purchased_at", Type: field.TypeTime, Nullable: true},
		{Name: "total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "PLN", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "raw_extraction", Type: field.TypeJSON, Nullable: true},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "pending_ocr"},
		{Name: "processing_notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "total_diff", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_status",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[8]},
			},
			{
				Name:    "receipt_content_hash",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[7]},
			},
			{
				Name:    "receipt_purchased_at",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[2]},
			},
			{
				Name:    "receipt_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[12]},
			},
		},
	}
	// ReceiptLineItemsColumns holds the columns for the "receipt_line_items" table.
	ReceiptLineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "product_name", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_code", Type: field.TypeString, Nullable: true, Size: 1},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "matched_product_id", Type: field.TypeUUID, Nullable: true},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// ReceiptLineItemsTable holds the schema information for the "receipt_line_items" table.
	ReceiptLineItemsTable = &schema.Table{
		Name:       "receipt_line_items",
		Columns:    ReceiptLineItemsColumns,
		PrimaryKey: []*schema.Column{ReceiptLineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_line_items_products_receipt_items",
				Columns:    []*schema.Column{ReceiptLineItemsColumns[8]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "receipt_line_items_receipts_line_items",
				Columns:    []*schema.Column{ReceiptLineItemsColumns[9]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receiptlineitem_receipt_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptLineItemsColumns[9]},
			},
			{
				Name:    "receiptlineitem_matched_product_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptLineItemsColumns[8]},
			},
			{
				Name:    "receiptlineitem_product_name",
				Unique:  false,
				Columns: []*schema.Column{ReceiptLineItemsColumns[2]},
			},
		},
	}
	// OcrTrainingSamplesColumns holds the columns for the "ocr_training_samples" table.
	OcrTrainingSamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "weak_text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "strong_text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// OcrTrainingSamplesTable holds the schema information for the "ocr_training_samples" table.
	OcrTrainingSamplesTable = &schema.Table{
		Name:       "ocr_training_samples",
		Columns:    OcrTrainingSamplesColumns,
		PrimaryKey: []*schema.Column{OcrTrainingSamplesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_training_samples_receipts_training_samples",
				Columns:    []*schema.Column{OcrTrainingSamplesColumns[4]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trainingsample_receipt_id",
				Unique:  false,
				Columns: []*schema.Column{OcrTrainingSamplesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		ConsumptionEventsTable,
		OcrCorrectionPatternsTable,
		InventoryItemsTable,
		ProductsTable,
		ReceiptsTable,
		ReceiptLineItemsTable,
		OcrTrainingSamplesTable,
	}
)

func init() {
	CategoriesTable.ForeignKeys[0].RefTable = CategoriesTable
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	ConsumptionEventsTable.ForeignKeys[0].RefTable = InventoryItemsTable
	ConsumptionEventsTable.Annotation = &entsql.Annotation{
		Table: "consumption_events",
	}
	OcrCorrectionPatternsTable.Annotation = &entsql.Annotation{
		Table: "ocr_correction_patterns",
	}
	InventoryItemsTable.ForeignKeys[0].RefTable = ProductsTable
	InventoryItemsTable.Annotation = &entsql.Annotation{
		Table: "inventory_items",
	}
	ProductsTable.ForeignKeys[0].RefTable = CategoriesTable
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	ReceiptLineItemsTable.ForeignKeys[0].RefTable = ProductsTable
	ReceiptLineItemsTable.ForeignKeys[1].RefTable = ReceiptsTable
	ReceiptLineItemsTable.Annotation = &entsql.Annotation{
		Table: "receipt_line_items",
	}
	OcrTrainingSamplesTable.ForeignKeys[0].RefTable = ReceiptsTable
	OcrTrainingSamplesTable.Annotation = &entsql.Annotation{
		Table: "ocr_training_samples",
	}
}
