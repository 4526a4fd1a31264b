package catalog

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"variant-service/internal/fileio"
	"variant-service/internal/utils"
	"variant-service/internal/variant/model"
)

// Product — один вариант артикула из экспорта Prodotti.
type Product struct {
	FullID         string   // ID ARTICOLO
	ArticleName    string   // NOME ARTICOLO
	PackageContent string   // CONTENUTO IMBALLAGGIO; "" = нет данных
	MultipleQty    *float64 // QTÀ MULTIPLI; nil = нет данных
}

// Catalog — каталог вариантов в памяти, группировка по артикулу.
// Перезагружается целиком (POST /catalog), поэтому под RWMutex.
type Catalog struct {
	mu        sync.RWMutex
	byArticle map[string][]Product
	products  int
}

func New() *Catalog {
	return &Catalog{byArticle: map[string][]Product{}}
}

// Желаемые колонки экспорта; альтернативы через "|", как в маппинге сверки.
const (
	colID       = "id articolo|codice articolo"
	colName     = "nome articolo|articolo"
	colPackage  = "contenuto imballaggio|contenuto confezione"
	colMultiple = "qta multipli|multipli"
)

// LoadFrom — читает экспорт и заменяет содержимое каталога целиком.
// Возвращает число загруженных вариантов.
func (c *Catalog) LoadFrom(r io.Reader, filename string, headerRow int) (int, error) {
	recs, err := fileio.ReadAnyMaps(r, filename, headerRow)
	if err != nil {
		return 0, err
	}
	if len(recs) == 0 {
		return 0, errors.New("catalog export is empty")
	}

	byArticle := map[string][]Product{}
	n := 0
	for _, rec := range recs {
		id := strings.TrimSpace(rec[resolveKey(rec, colID)])
		name := strings.TrimSpace(rec[resolveKey(rec, colName)])
		if id == "" || name == "" {
			continue // шапки, разделители, хвостовой мусор экспорта
		}
		p := Product{
			FullID:         id,
			ArticleName:    name,
			PackageContent: strings.TrimSpace(rec[resolveKey(rec, colPackage)]),
		}
		if v, ok := utils.ParseFloatIT(rec[resolveKey(rec, colMultiple)]); ok && v > 0 {
			p.MultipleQty = &v
		}
		key := articleKey(name)
		byArticle[key] = append(byArticle[key], p)
		n++
	}
	if n == 0 {
		return 0, errors.New("catalog export: no usable rows (wrong header row?)")
	}

	c.mu.Lock()
	c.byArticle = byArticle
	c.products = n
	c.mu.Unlock()
	return n, nil
}

// LoadFile — удобство для старта по CATALOG_FILE.
func (c *Catalog) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return c.LoadFrom(f, filepath.Base(path), 1)
}

// Counts — число вариантов и число артикулов.
func (c *Catalog) Counts() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products, len(c.byArticle)
}

// Lookup — внешний контракт для бота: артикул + желаемое количество →
// дескриптор целевого варианта. Среди вариантов артикула предпочитаем тот,
// чья кратность делит количество нацело (при нескольких — с наибольшей
// кратностью); иначе берём первый в порядке экспорта.
func (c *Catalog) Lookup(article string, qty float64) (model.VariantDescriptor, bool) {
	c.mu.RLock()
	variants := c.byArticle[articleKey(article)]
	c.mu.RUnlock()
	if len(variants) == 0 {
		return model.VariantDescriptor{}, false
	}

	best := variants[0]
	bestMult := -1.0
	if qty > 0 {
		for _, v := range variants {
			if v.MultipleQty == nil || *v.MultipleQty <= 0 {
				continue
			}
			m := *v.MultipleQty
			if isMultipleOf(qty, m) && m > bestMult {
				best = v
				bestMult = m
			}
		}
	}

	return model.VariantDescriptor{
		FullID:         best.FullID,
		Suffix:         VariantSuffix(best.FullID),
		PackageContent: best.PackageContent,
		MultipleQty:    best.MultipleQty,
		ArticleName:    article,
	}, true
}

// хвост вида "K1"/"B2"/"A"; если ID кончается иначе — последний символ
var rxSuffix = regexp.MustCompile(`[A-Za-z]\d?$`)

// VariantSuffix — слабый опознавательный токен варианта: последние 1-2
// символа полного ID, которые UI часто дописывает в текст строки.
func VariantSuffix(fullID string) string {
	fullID = strings.TrimSpace(fullID)
	if fullID == "" {
		return ""
	}
	if m := rxSuffix.FindString(fullID); m != "" {
		return m
	}
	r := []rune(fullID)
	return string(r[len(r)-1])
}

func isMultipleOf(qty, m float64) bool {
	k := qty / m
	return k == float64(int64(k))
}

func articleKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
