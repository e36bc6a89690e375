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
	"time"

	"github.com/gddickinson/tea-explorer-sub000/internal/system/log"
)

// Timer measures the duration of a bounded code region. Start it at the
// top of the region and defer Stop, which records the elapsed time into
// the collector on every exit path, panics included:
//
//	t := metrics.StartTimer(collector, "load_charts", true)
//	defer t.Stop()
type Timer struct {
	name       string
	collector  *Collector
	logElapsed bool
	start      time.Time
	elapsed    time.Duration
	stopped    bool
}

// StartTimer captures the start time for a scoped measurement recorded
// under name. When logElapsed is set, Stop emits the elapsed time through
// the logger immediately.
func StartTimer(c *Collector, name string, logElapsed bool) *Timer {
	return &Timer{
		name:       name,
		collector:  c,
		logElapsed: logElapsed,
		start:      time.Now(),
	}
}

// Stop records the elapsed duration and returns it. Calling Stop again
// returns the already-recorded duration without recording a second sample.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return t.elapsed
	}
	t.stopped = true
	t.elapsed = time.Since(t.start)

	if t.collector != nil {
		t.collector.Record(t.name, t.elapsed)
	}
	if t.logElapsed {
		log.GetLogger().Info("Timer elapsed",
			log.String(log.LoggerKeyOperationName, t.name),
			log.Duration("elapsed", t.elapsed))
	}
	return t.elapsed
}

// Elapsed returns the measured duration, or 0 before Stop has run.
func (t *Timer) Elapsed() time.Duration {
	if !t.stopped {
		return 0
	}
	return t.elapsed
}
