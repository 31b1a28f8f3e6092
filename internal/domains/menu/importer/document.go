package importer

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"carre/shared/failure"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

var supportedExtensions = map[string]bool{
	".docx": true,
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// ReadDocument extracts rows and text from an uploaded menu file. The
// extension decides the extraction path; anything else is rejected before
// any parsing happens.
func ReadDocument(fileName string, data []byte) (Document, error) {
	ext := strings.ToLower(path.Ext(fileName))
	if !supportedExtensions[ext] {
		return Document{}, failure.BadRequestFromString(fmt.Sprintf("unsupported file type: %s", ext)) // nolint:wrapcheck
	}

	var (
		rows [][]string
		err  error
	)

	switch ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xlsx":
		rows, err = readSpreadsheet(data)
	case ".xls":
		rows, err = readLegacySpreadsheet(data)
	case ".docx":
		rows, err = readDocx(data)
	}

	if err != nil {
		return Document{}, failure.BadRequestFromString(fmt.Sprintf("failed to extract file content: %v", err)) // nolint:wrapcheck
	}

	doc := Document{Rows: rows, Text: flatten(rows)}

	if strings.TrimSpace(doc.Text) == "" {
		return Document{}, failure.BadRequestFromString("no text could be extracted from the file") // nolint:wrapcheck
	}

	return doc, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return rows, nil
}

func readSpreadsheet(data []byte) ([][]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet rows: %w", err)
	}

	return rows, nil
}

// readLegacySpreadsheet handles pre-2007 BIFF workbooks, which excelize
// cannot open.
func readLegacySpreadsheet(data []byte) ([][]string, error) {
	book, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy spreadsheet: %w", err)
	}

	if book.GetNumberSheets() == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	sheet, err := book.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet: %w", err)
	}

	rows := [][]string{}

	for i := 0; i < sheet.GetNumberRows(); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			continue
		}

		cells := []string{}
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

// docx body markup, reduced to what text extraction needs.
type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []struct {
		Texts []string `xml:"t"`
		Tabs  []struct{} `xml:"tab"`
	} `xml:"r"`
}

func (p docxParagraph) text() string {
	var sb strings.Builder

	for _, run := range p.Runs {
		for range run.Tabs {
			sb.WriteString("\t")
		}

		for _, t := range run.Texts {
			sb.WriteString(t)
		}
	}

	return sb.String()
}

func readDocx(data []byte) ([][]string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}

	var content []byte

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		reader, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open document.xml: %w", err)
		}

		content, err = io.ReadAll(reader)
		reader.Close()

		if err != nil {
			return nil, fmt.Errorf("failed to read document.xml: %w", err)
		}

		break
	}

	if content == nil {
		return nil, fmt.Errorf("docx archive has no document.xml")
	}

	var doc docxDocument
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document.xml: %w", err)
	}

	rows := [][]string{}

	for _, paragraph := range doc.Body.Paragraphs {
		line := strings.TrimSpace(paragraph.text())
		if line == "" {
			continue
		}

		cells := strings.Split(line, "\t")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

func flatten(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "\t")
	}

	return strings.Join(lines, "\n")
}
