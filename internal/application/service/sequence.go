package service

import "fmt"

// Counter seeds. Invoices and sales orders start their series at 1001;
// purchase order numbers track document count, so that counter seeds
// at zero and the first number issued is PO-1.
const (
	invoiceSeed       int64 = 1000
	salesOrderSeed    int64 = 1000
	purchaseOrderSeed int64 = 0
)

func formatInvoiceNo(n int64) string {
	return fmt.Sprintf("INV-%d", n)
}

func formatSalesOrderNo(n int64) string {
	return fmt.Sprintf("SO-%d", n)
}

func formatPurchaseOrderNo(n int64) string {
	return fmt.Sprintf("PO-%d", n)
}
