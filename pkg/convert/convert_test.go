package convert

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ssargent/tinyprs/pkg/codec"
	"github.com/ssargent/tinyprs/pkg/preset"
)

func writeDefaultPreset(t *testing.T, dir, name string) (string, []byte) {
	t.Helper()
	data, err := codec.NewPresetCodec().Encode(preset.Default())
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, data
}

func TestConvertFile_Export(t *testing.T) {
	dir := t.TempDir()
	path, data := writeDefaultPreset(t, dir, "default.prs")

	core, logs := observer.New(zapcore.InfoLevel)
	conv := NewConverter(codec.NewPresetCodec(), Options{Indent: "    ", Logger: zap.New(core)})

	res, err := conv.ConvertFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, Export, res.Direction)
	assert.Empty(t, res.Output)
	assert.Equal(t, codec.Checksum(data[:codec.ChecksumRange]), res.Checksum)
	assert.True(t, strings.HasPrefix(string(res.Document), "{\n    \"auto_reflevel\": true"))

	entries := logs.FilterMessage("converted preset").All()
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].ContextMap()["path"])
	assert.Equal(t, "export", entries[0].ContextMap()["direction"])

	_, err = os.Stat(filepath.Join(dir, "default.json"))
	assert.True(t, os.IsNotExist(err), "document not written without WriteDocument")
}

func TestConvertFile_ExportWritesDocument(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeDefaultPreset(t, dir, "scan.prs")

	conv := NewConverter(codec.NewPresetCodec(), Options{Format: FormatYAML, WriteDocument: true})
	res, err := conv.ConvertFile(context.Background(), path)
	require.NoError(t, err)

	want := filepath.Join(dir, "scan.yaml")
	assert.Equal(t, want, res.Output)
	written, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, res.Document, written)
	assert.Contains(t, string(written), "trigger_trace: 255\n")
}

func TestConvertFile_ExportTrailingBytesLogged(t *testing.T) {
	dir := t.TempDir()
	path, data := writeDefaultPreset(t, dir, "long.prs")
	require.NoError(t, os.WriteFile(path, append(data, 0xAA, 0xBB), 0644))

	core, logs := observer.New(zapcore.WarnLevel)
	conv := NewConverter(codec.NewPresetCodec(), Options{Logger: zap.New(core)})

	_, err := conv.ConvertFile(context.Background(), path)
	require.NoError(t, err)

	entries := logs.FilterMessage("ignoring bytes after preset record").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["trailing_bytes"])
}

func TestConvertFile_ImportJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edited.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"reflevel": -20, "preset_name": "Edited", "comment": "x"}`), 0644))

	core, logs := observer.New(zapcore.WarnLevel)
	conv := NewConverter(codec.NewPresetCodec(), Options{Logger: zap.New(core)})

	res, err := conv.ConvertFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, Import, res.Direction)
	assert.Equal(t, path+".prs", res.Output)
	assert.Equal(t, []string{"comment"}, res.Ignored)
	assert.Equal(t, 1, logs.FilterMessage("ignoring unknown document keys").Len())

	data, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	require.Len(t, data, codec.RecordSize)

	p, err := codec.NewPresetCodec().Decode(data)
	require.NoError(t, err)

	want := preset.Default()
	want.RefLevel = -20
	want.Name = "Edited"
	assert.Equal(t, want, p)
	assert.Equal(t, codec.Checksum(data[:codec.ChecksumRange]), res.Checksum)
}

func TestConvertFile_ImportYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edited.yml")
	require.NoError(t, os.WriteFile(path, []byte("frequency0: 88000000\nfrequency1: 108000000\n"), 0644))

	conv := NewConverter(codec.NewPresetCodec(), Options{})
	res, err := conv.ConvertFile(context.Background(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	p, err := codec.NewPresetCodec().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(88000000), p.Frequency0)
	assert.Equal(t, uint64(108000000), p.Frequency1)
}

func TestConvertFile_ExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()

	p := preset.Default()
	p.Name = "Round"
	p.Markers[1] = preset.Marker{Type: preset.MarkerNoise, Enabled: preset.MarkerEnabled, Index: 17, Frequency: 1e9}
	p.Limits[2][1] = preset.Limit{Enabled: 1, Level: -70, Frequency: 5e8}
	original, err := codec.NewPresetCodec().Encode(p)
	require.NoError(t, err)
	src := filepath.Join(dir, "round.prs")
	require.NoError(t, os.WriteFile(src, original, 0644))

	conv := NewConverter(codec.NewPresetCodec(), Options{WriteDocument: true})
	exported, err := conv.ConvertFile(context.Background(), src)
	require.NoError(t, err)

	imported, err := conv.ConvertFile(context.Background(), exported.Output)
	require.NoError(t, err)

	data, err := os.ReadFile(imported.Output)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestExportImport_NonFiniteFloats(t *testing.T) {
	c := codec.NewPresetCodec()
	p := preset.Default()
	p.Level = math.Float32frombits(0x7FC00001) // NaN with a payload
	p.RefLevel = float32(math.Inf(-1))
	p.Limits[0][0].Level = float32(math.Inf(1))
	original, err := c.Encode(p)
	require.NoError(t, err)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			conv := NewConverter(c, Options{Format: format, Indent: "  "})

			doc, _, err := conv.ExportBytes(original)
			require.NoError(t, err)

			data, _, err := conv.ImportBytes(doc, format)
			require.NoError(t, err)

			got, err := c.Decode(data)
			require.NoError(t, err)
			assert.True(t, math.IsNaN(float64(got.Level)))
			assert.True(t, math.IsInf(float64(got.RefLevel), -1))
			assert.True(t, math.IsInf(float64(got.Limits[0][0].Level), 1))

			again, _, err := conv.ExportBytes(data)
			require.NoError(t, err)
			assert.Equal(t, string(doc), string(again))
		})
	}
}

func TestConvertFile_UnsupportedExtension(t *testing.T) {
	conv := NewConverter(codec.NewPresetCodec(), Options{})
	for _, name := range []string{"preset.bmp", "preset", "preset.prs.bak"} {
		_, err := conv.ConvertFile(context.Background(), name)
		assert.ErrorIs(t, err, ErrUnsupportedExtension, name)
	}
}

func TestConvertFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := NewConverter(codec.NewPresetCodec(), Options{})
	_, err := conv.ConvertFile(ctx, "whatever.prs")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertFile_FailedImportKeepsDestination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	dest := path + ".prs"
	require.NoError(t, os.WriteFile(dest, []byte("previous contents"), 0644))

	// an empty band list encodes to a record with the wrong band count
	require.NoError(t, os.WriteFile(path, []byte(`{"bands": []}`), 0644))

	conv := NewConverter(codec.NewPresetCodec(), Options{})
	_, err := conv.ConvertFile(context.Background(), path)
	require.ErrorIs(t, err, codec.ErrCountMismatch)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "previous contents", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files left behind")
}

func TestConvertFile_Metrics(t *testing.T) {
	dir := t.TempDir()
	good, data := writeDefaultPreset(t, dir, "good.prs")

	data[200] ^= 0xFF
	bad := filepath.Join(dir, "bad.prs")
	require.NoError(t, os.WriteFile(bad, data, 0644))

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	conv := NewConverter(codec.NewPresetCodec(), Options{Metrics: m, WriteDocument: true})

	_, err := conv.ConvertFile(context.Background(), good)
	require.NoError(t, err)
	_, err = conv.ConvertFile(context.Background(), bad)
	require.ErrorIs(t, err, codec.ErrChecksumMismatch)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("export", statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("export", statusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checksumFailuresTotal))
	assert.Greater(t, testutil.ToFloat64(m.bytesWrittenTotal), 0.0)

	textfile := filepath.Join(dir, "tinyprs.prom")
	require.NoError(t, WriteTextfile(textfile, reg))
	out, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(out), "tinyprs_checksum_failures_total 1")
}

func TestImportPreset(t *testing.T) {
	conv := NewConverter(codec.NewPresetCodec(), Options{})

	p, rep, err := conv.ImportPreset([]byte(`{"preset_name":"Scan","bogus":1}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Scan", p.Name)
	assert.Equal(t, []string{"bogus"}, rep.Ignored)

	p, _, err = conv.ImportPreset([]byte("reflevel: -40\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, float32(-40), p.RefLevel)

	_, _, err = conv.ImportPreset([]byte(`[1]`), FormatJSON)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteFileAtomic_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.prs")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "out.prs"), []byte("x"), 0644)
	assert.Error(t, err)
}
