package leavebalance

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type statement struct {
	owner       OwnerRow
	balances    []BalanceResponse
	history     []HistoryResponse
	generatedAt time.Time
}

var historyColumns = []struct {
	title string
	width float64
}{
	{"Date", 32},
	{"Type", 22},
	{"Variation", 24},
	{"Motif", 70},
	{"Auteur", 42},
}

func renderStatement(st statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Relevé de congés", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Relevé de congés"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Entreprise : %s", st.owner.CompanyName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Salarié : %s <%s>", st.owner.UserName, st.owner.UserEmail)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Édité le : %s", st.generatedAt.Format("02/01/2006 15:04 MST"))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Soldes"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(st.balances) == 0 {
		pdf.Cell(0, 7, tr("Aucun solde"))
		pdf.Ln(7)
	}
	for _, b := range st.balances {
		pdf.CellFormat(40, 7, string(b.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, tr(b.RemainingDays.StringFixed(1)+" j"), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Historique"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range historyColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, h := range st.history {
		change := h.Change.StringFixed(1)
		if h.Change.IsPositive() {
			change = "+" + change
		}
		actor := h.Actor.Name
		if actor == "" {
			actor = h.Actor.Email
		}

		cells := []string{
			h.CreatedAt.Format("02/01/2006 15:04"),
			string(h.Type),
			change,
			truncate(h.Reason, 45),
			truncate(actor, 26),
		}
		for i, col := range historyColumns {
			align := "L"
			if i == 2 {
				align = "R"
			}
			pdf.CellFormat(col.width, 6, tr(cells[i]), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render leave statement: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
