package mapper

import (
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "Library_Demo_Service/internal/library-service/errors"
)

//go:embed xml/test_mapper.xml
var mapperFS embed.FS

const defaultMapperFile = "xml/test_mapper.xml"

type mapperDocument struct {
	XMLName   xml.Name          `xml:"mapper"`
	Namespace string            `xml:"namespace,attr"`
	Selects   []selectStatement `xml:"select"`
}

type selectStatement struct {
	ID         string `xml:"id,attr"`
	ResultType string `xml:"resultType,attr"`
	SQL        string `xml:",chardata"`
}

// Statements is a set of named SQL statements read from a mapper XML document.
type Statements struct {
	Namespace string
	byID      map[string]string
}

func (s *Statements) Get(id string) (string, error) {
	sql, ok := s.byID[id]
	if !ok {
		return "", fmt.Errorf("Statements.Get %s.%s: %w", s.Namespace, id, apperrors.ErrStatementNotFound)
	}
	return sql, nil
}

func (s *Statements) Len() int {
	return len(s.byID)
}

func LoadStatements(r io.Reader) (*Statements, error) {
	var doc mapperDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("LoadStatements: %w", err)
	}
	stmts := &Statements{
		Namespace: doc.Namespace,
		byID:      make(map[string]string, len(doc.Selects)),
	}
	for _, sel := range doc.Selects {
		if sel.ID == "" {
			return nil, errors.New("LoadStatements: select without id")
		}
		if _, dup := stmts.byID[sel.ID]; dup {
			return nil, fmt.Errorf("LoadStatements: duplicate select id %q", sel.ID)
		}
		sql := normalizeSQL(sel.SQL)
		if sql == "" {
			return nil, fmt.Errorf("LoadStatements: select %q has no SQL", sel.ID)
		}
		stmts.byID[sel.ID] = sql
	}
	return stmts, nil
}

func LoadStatementsFile(path string) (*Statements, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadStatementsFile: %w", err)
	}
	defer f.Close()
	return LoadStatements(f)
}

// DefaultStatements returns the mapper XML compiled into the binary.
func DefaultStatements() (*Statements, error) {
	f, err := mapperFS.Open(defaultMapperFile)
	if err != nil {
		return nil, fmt.Errorf("DefaultStatements: %w", err)
	}
	defer f.Close()
	return LoadStatements(f)
}

// normalizeSQL collapses the indentation of the XML body onto one line.
func normalizeSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
