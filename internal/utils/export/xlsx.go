package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// TransactionsSheet is the worksheet holding the exported ledger.
const TransactionsSheet = "Transactions"

// XLSXContentType is the MIME type of the generated workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var transactionHeadings = []string{"ID", "Date", "Kind", "Category", "Amount", "Note"}

// WriteTransactionsXLSX renders txns, in the given order, as a one-sheet
// workbook and writes it to w.
func WriteTransactionsXLSX(w io.Writer, txns []domain.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range transactionHeadings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(TransactionsSheet, cell, h); err != nil {
			return fmt.Errorf("write heading %s: %w", h, err)
		}
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("create amount style: %w", err)
	}

	for i, txn := range txns {
		row := i + 2
		note := ""
		if txn.Note != nil {
			note = *txn.Note
		}
		values := []any{
			txn.TransactionID,
			txn.OccurredOn.Format(domain.DateLayout),
			string(txn.Kind),
			txn.Category,
			txn.Amount.InexactFloat64(),
			note,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TransactionsSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		amountCell, _ := excelize.CoordinatesToCellName(5, row)
		if err := f.SetCellStyle(TransactionsSheet, amountCell, amountCell, amountStyle); err != nil {
			return fmt.Errorf("style row %d: %w", row, err)
		}
	}

	if err := f.SetPanes(TransactionsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze heading: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
