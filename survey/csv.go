// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package survey

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// AppendCSV appends s as a row to filename, creating it if needed, so runs
// with different configs can be compared later. Columns are name, count, min,
// max, mean, stddev and out of range fraction.
func (s Stats) AppendCSV(filename, name string) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrap(err, "could not open stats log")
	}
	defer f.Close()

	w := csv.NewWriter(f)

	fields := []interface{}{name, s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.OutOfRange}
	fieldStrings := make([]string, 0, len(fields))
	for _, field := range fields {
		switch v := field.(type) {
		case float32:
			fieldStrings = append(fieldStrings, fmt.Sprintf("%.4f", v))
		default:
			fieldStrings = append(fieldStrings, fmt.Sprint(v))
		}
	}

	if err := w.Write(fieldStrings); err != nil {
		return errors.Wrap(err, "could not write stats log")
	}

	w.Flush()
	// Error from flush
	return errors.Wrap(w.Error(), "could not write stats log")
}
