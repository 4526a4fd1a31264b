package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-service/internal/catalog"
	"variant-service/internal/variant/model"
)

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestSelect(t *testing.T) {
	h := Select(zerolog.Nop())

	req := SelectRequest{
		Headers: []string{"Nome articolo", "Contenuto imballaggio", "Qtà multipli"},
		Rows: []model.RowSnapshot{
			{Index: 0, CellTexts: []string{"9530.900.260K0", "100", "1"}},
			{Index: 1, CellTexts: []string{"9530.900.260K1", "10", "5"}},
			{Index: 2, CellTexts: []string{"9530.900.260K2", "50", "10"}},
		},
		Target: model.VariantDescriptor{FullID: "9530.900.260K1", Suffix: "K1", PackageContent: "10"},
	}
	rec := postJSON(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SelectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Choice.Chosen)
	assert.Equal(t, 1, resp.Choice.Chosen.Index)
	assert.Equal(t, "variant-id", resp.Choice.Reason)
	assert.Equal(t, model.ConfidenceHigh, resp.Confidence)
	// фокус не передан: идём к абсолютной позиции
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "down", resp.Plan.Direction)
	assert.Equal(t, 2, resp.Plan.Steps)
}

func TestSelect_NoSafeMatchHasNoPlan(t *testing.T) {
	h := Select(zerolog.Nop())
	req := SelectRequest{
		Rows: []model.RowSnapshot{
			{Index: 0, CellTexts: []string{"a"}},
			{Index: 1, CellTexts: []string{"b"}},
		},
		Target: model.VariantDescriptor{FullID: "NOPE"},
	}
	rec := postJSON(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SelectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Choice.Chosen)
	assert.Empty(t, resp.Choice.Reason)
	assert.Equal(t, model.ConfidenceNone, resp.Confidence)
	assert.Nil(t, resp.Plan)
}

func TestSelect_BadSnapshotIs400(t *testing.T) {
	h := Select(zerolog.Nop())
	req := SelectRequest{
		Rows:   []model.RowSnapshot{{Index: 0}}, // cellTexts отсутствует
		Target: model.VariantDescriptor{FullID: "X"},
	}
	rec := postJSON(t, h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelect_MissingTargetIs400(t *testing.T) {
	h := Select(zerolog.Nop())
	rec := postJSON(t, h, SelectRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveVariant(t *testing.T) {
	cat := catalog.New()
	_, err := cat.LoadFrom(strings.NewReader(
		"ID ARTICOLO;NOME ARTICOLO;CONTENUTO IMBALLAGGIO;QTA MULTIPLI\n9530.900.260K1;9530;10;5\n",
	), "prodotti.csv", 1)
	require.NoError(t, err)

	h := ResolveVariant(zerolog.Nop(), cat)

	rec := postJSON(t, h, map[string]any{"article": "9530", "qty": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	var desc model.VariantDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &desc))
	assert.Equal(t, "9530.900.260K1", desc.FullID)
	assert.Equal(t, "K1", desc.Suffix)

	rec = postJSON(t, h, map[string]any{"article": "0000", "qty": 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadCatalog(t *testing.T) {
	cat := catalog.New()
	h := UploadCatalog(zerolog.Nop(), cat)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "prodotti.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("ID ARTICOLO;NOME ARTICOLO\nAAA1;AAA\nBBB2;BBB\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/catalog", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	variants, articles := cat.Counts()
	assert.Equal(t, 2, variants)
	assert.Equal(t, 2, articles)
}
