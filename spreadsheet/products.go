// Package spreadsheet reads and writes the product catalog as an Excel
// workbook with one column per language.
package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mariam168/smart-shop-sub001/i18n"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const sheetName = "Products"

var headers = []string{
	"ID", "NameEN", "NameAR", "DescriptionEN", "DescriptionAR",
	"BasePrice", "Weight", "Stock", "Images", "Category", "SubCategory",
	"CreatedAt", "UpdatedAt",
}

const timeLayout = "2006-01-02 15:04:05"

// ProductsWorkbook lays out products one per row under a header row.
func ProductsWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.Hex())
		row.AddCell().SetString(p.Name.EN)
		row.AddCell().SetString(p.Name.AR)
		row.AddCell().SetString(p.Description.EN)
		row.AddCell().SetString(p.Description.AR)
		row.AddCell().SetFloat(p.BasePrice)
		row.AddCell().SetFloat(p.Weight)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(strings.Join(p.Images, ","))
		row.AddCell().SetString(hexOrEmpty(p.Category))
		row.AddCell().SetString(hexOrEmpty(p.SubCategory))
		row.AddCell().SetString(p.CreatedAt.UTC().Format(timeLayout))
		row.AddCell().SetString(p.UpdatedAt.UTC().Format(timeLayout))
	}
	return file, nil
}

// Row is one parsed product line. ID is zero for rows that create a product.
type Row struct {
	Line    int
	Product models.Product
}

// Skipped explains why a line was not imported.
type Skipped struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ParseProducts reads the first sheet of file. Lines that fail to parse or
// validate are reported in skipped and never abort the import.
func ParseProducts(file *xlsx.File) (rows []Row, skipped []Skipped, err error) {
	if len(file.Sheets) == 0 || file.Sheets[0].MaxRow < 2 {
		return nil, nil, fmt.Errorf("workbook is empty or missing header row")
	}
	sheet := file.Sheets[0]

	for i := 1; i < sheet.MaxRow; i++ {
		line := i + 1
		p, perr := parseRow(sheet.Rows[i])
		if perr != nil {
			skipped = append(skipped, Skipped{Line: line, Reason: perr.Error()})
			continue
		}
		if verr := p.Validate(); verr != nil {
			skipped = append(skipped, Skipped{Line: line, Reason: verr.Error()})
			continue
		}
		rows = append(rows, Row{Line: line, Product: p})
	}
	return rows, skipped, nil
}

func parseRow(row *xlsx.Row) (models.Product, error) {
	var p models.Product
	if row == nil {
		return p, fmt.Errorf("empty row")
	}
	get := func(index int) string {
		if index < len(row.Cells) {
			return strings.TrimSpace(row.Cells[index].String())
		}
		return ""
	}

	if raw := get(0); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return p, fmt.Errorf("invalid ID %q", raw)
		}
		p.ID = id
	}
	p.Name = i18n.NewText(get(1), get(2))
	p.Description = i18n.NewText(get(3), get(4))

	var err error
	if p.BasePrice, err = parseFloat(get(5)); err != nil {
		return p, fmt.Errorf("invalid BasePrice: %w", err)
	}
	if p.Weight, err = parseFloat(get(6)); err != nil {
		return p, fmt.Errorf("invalid Weight: %w", err)
	}
	stock, err := parseFloat(get(7))
	if err != nil {
		return p, fmt.Errorf("invalid Stock: %w", err)
	}
	p.Stock = int(stock)

	p.Images = []string{}
	for _, img := range strings.Split(get(8), ",") {
		if img = strings.TrimSpace(img); img != "" {
			p.Images = append(p.Images, img)
		}
	}
	if p.Category, err = parseRef(get(9)); err != nil {
		return p, fmt.Errorf("invalid Category: %w", err)
	}
	if p.SubCategory, err = parseRef(get(10)); err != nil {
		return p, fmt.Errorf("invalid SubCategory: %w", err)
	}
	if created, err := time.Parse(timeLayout, get(11)); err == nil {
		p.CreatedAt = created
	}
	return p, nil
}

func parseFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseRef(raw string) (*primitive.ObjectID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func hexOrEmpty(id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	return id.Hex()
}
