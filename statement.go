package ledgersim

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const noTransactionsLine = "No transactions were made."

// WriteStatement writes one "<Kind>:\tR$ <amount>" line per history entry
// followed by the balance line.
func WriteStatement(w io.Writer, acct *Account) error {
	entries := acct.History().Entries()
	if len(entries) == 0 {
		if _, err := fmt.Fprintln(w, noTransactionsLine); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s:\tR$ %s\n", e.Kind, e.Amount.StringFixed(2)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Saldo:\tR$ %s\n", acct.Balance().StringFixed(2))
	return err
}

// WriteStatementPDF renders the same statement as a single A4 table.
func WriteStatementPDF(w io.Writer, acct *Account) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	holder := ""
	if acct.Owner != nil {
		holder = acct.Owner.Name
	}
	pdf.SetTitle(fmt.Sprintf("Statement %s/%d", acct.Branch, acct.Number), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Statement", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Branch: %s", acct.Branch), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Account: %d", acct.Number), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Holder: %s", holder)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Kind", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Amount", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	entries := acct.History().Entries()
	if len(entries) == 0 {
		pdf.CellFormat(160, 7, noTransactionsLine, "1", 1, "L", false, 0, "")
	}
	for _, e := range entries {
		pdf.CellFormat(60, 7, e.Time.Format("2006-01-02 15:04:05"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, string(e.Kind), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, "R$ "+e.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(110, 7, "Saldo", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "R$ "+acct.Balance().StringFixed(2), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}
