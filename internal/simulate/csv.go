package simulate

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"grid-scenario/internal/model"

	"github.com/shopspring/decimal"
)

// LedgerHeader returns the CSV column names, ending with one exported_<source>
// column per generation source.
func LedgerHeader() []string {
	header := []string{
		"run_id",
		"index",
		"time",
		"scope",
		"electricity_price",
		"gas_price",
		"electricity_demand",
		"gas_demand",
		"electricity_import",
		"electricity_export",
		"gas_import",
		"gas_export",
		"net_electricity_import_export",
		"net_gas_import_export",
		"net_electricity_demand",
		"net_gas_demand",
		"total_generation",
		"transmission_efficiency",
		"actual_transmission",
		"gas_net_availability",
	}
	for _, s := range model.Sources() {
		header = append(header, "exported_"+string(s))
	}
	return header
}

// WriteLedgerCSV writes ledger to path, creating parent directories.
func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(LedgerHeader()); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			r.RunID.String(),
			strconv.Itoa(r.Index),
			fmtTime(r.Time),
			r.Scope,
			fmtFloat(r.ElectricityPrice),
			fmtFloat(r.GasPrice),
			fmtFloat(r.ElectricityDemand),
			fmtFloat(r.GasDemand),
			fmtFloat(r.ElectricityImport),
			fmtFloat(r.ElectricityExport),
			fmtFloat(r.GasImport),
			fmtFloat(r.GasExport),
			fmtFloat(r.NetElectricity),
			fmtFloat(r.NetGas),
			fmtFloat(r.NetElectricityDemand),
			fmtFloat(r.NetGasDemand),
			fmtFloat(r.TotalGeneration),
			fmtFloat(r.TransmissionEfficiency),
			fmtFloat(r.ActualTransmission),
			fmtFloat(r.GasNetAvailability),
		}
		for _, s := range model.Sources() {
			if v, ok := r.Exported[s]; ok {
				row = append(row, fmtFloat(v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// fmtFloat rounds half away from zero to 6 places.
func fmtFloat(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(6)
}
