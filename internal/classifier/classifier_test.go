package classifier

import (
	"testing"

	"xmlcsv/internal/models"
	"xmlcsv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	assert.Equal(t, "comissao_jan2024", Stem("/data/comissao_jan2024.xml"))
	assert.Equal(t, "vales_2024.backup", Stem("vales_2024.backup.xml"))
	assert.Equal(t, "vales_2024", Stem("vales_2024"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		stem    string
		want    models.Variant
		wantErr bool
	}{
		{stem: "comissao_jan2024", want: models.VariantCommission},
		{stem: "vales_2024", want: models.VariantVale},
		{stem: "vales_", want: models.VariantVale},
		{stem: "comissao_a_b_c", want: models.VariantCommission},
		{stem: "comissao", want: models.VariantCommission},
		{stem: "Comissao_jan", wantErr: true},
		{stem: "VALES_jan", wantErr: true},
		{stem: "comissaojan", wantErr: true},
		{stem: "vale_jan", wantErr: true},
		{stem: "folha_jan", wantErr: true},
		{stem: "_comissao", wantErr: true},
		{stem: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			got, err := Classify(tt.stem)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, parsererror.ErrUnsupportedSchema)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_ReportsPrefix(t *testing.T) {
	_, err := Classify("folha_jan2024")
	var unsupported *parsererror.UnsupportedSchemaError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "folha", unsupported.Prefix)
	assert.Equal(t, "folha_jan2024", unsupported.Stem)
}
