/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package metrics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"
)

// reportTopN bounds the number of operations listed per report section.
const reportTopN = 10

// WriteReport renders a human-readable performance report with the slowest
// and the most frequently called operations.
func (c *Collector) WriteReport(w io.Writer) error {
	divider := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 60)

	if _, err := fmt.Fprintf(w, "\n%s\nPERFORMANCE REPORT\n%s\n", divider, divider); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nSLOWEST OPERATIONS (by average time):\n%s\n", rule); err != nil {
		return err
	}
	for _, m := range c.Slowest(reportTopN) {
		avgMs := float64(m.Avg().Microseconds()) / 1000
		if _, err := fmt.Fprintf(w, "  %-40s %8.2fms (x%d)\n", m.Name, avgMs, m.Count); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nMOST CALLED OPERATIONS:\n%s\n", rule); err != nil {
		return err
	}
	for _, m := range c.MostCalled(reportTopN) {
		avgMs := float64(m.Avg().Microseconds()) / 1000
		if _, err := fmt.Fprintf(w, "  %-40s %6d calls (%.2fms avg)\n", m.Name, m.Count, avgMs); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", divider)
	return err
}

// PrintReport writes the performance report to stdout.
func (c *Collector) PrintReport() {
	// Report output is best-effort diagnostics.
	_ = c.WriteReport(os.Stdout)
}

// LogStats emits the slowest operations through the logger.
func (c *Collector) LogStats(logger *log.Logger) {
	for _, m := range c.Slowest(5) {
		logger.Info("Operation timing",
			log.String(log.LoggerKeyOperationName, m.Name),
			log.Int64("count", m.Count),
			log.Duration("avg", m.Avg()),
			log.Duration("min", m.Min),
			log.Duration("max", m.Max),
			log.Duration("last", m.Last))
	}
}
