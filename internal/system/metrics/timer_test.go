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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TimerTestSuite struct {
	suite.Suite
	collector *Collector
}

func TestTimerSuite(t *testing.T) {
	suite.Run(t, new(TimerTestSuite))
}

func (suite *TimerTestSuite) SetupTest() {
	suite.collector = NewCollector()
}

func (suite *TimerTestSuite) TestStopRecordsElapsed() {
	timer := StartTimer(suite.collector, "load_charts", false)
	time.Sleep(10 * time.Millisecond)
	elapsed := timer.Stop()

	assert.GreaterOrEqual(suite.T(), elapsed, 10*time.Millisecond)

	m, found := suite.collector.StatsFor("load_charts")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)
	assert.Equal(suite.T(), elapsed, m.Last)
}

func (suite *TimerTestSuite) TestStopIsIdempotent() {
	timer := StartTimer(suite.collector, "load_charts", false)
	first := timer.Stop()
	time.Sleep(5 * time.Millisecond)
	second := timer.Stop()

	assert.Equal(suite.T(), first, second)

	m, found := suite.collector.StatsFor("load_charts")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)
}

func (suite *TimerTestSuite) TestElapsedBeforeStop() {
	timer := StartTimer(suite.collector, "load_charts", false)

	assert.Equal(suite.T(), time.Duration(0), timer.Elapsed())

	timer.Stop()
	assert.Equal(suite.T(), timer.Stop(), timer.Elapsed())
}

func (suite *TimerTestSuite) TestDeferredStopRecordsOnPanic() {
	run := func() {
		timer := StartTimer(suite.collector, "panicking_region", false)
		defer timer.Stop()
		panic("boom")
	}

	assert.PanicsWithValue(suite.T(), "boom", run)

	m, found := suite.collector.StatsFor("panicking_region")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)
}

func (suite *TimerTestSuite) TestNilCollector() {
	timer := StartTimer(nil, "unrecorded", false)

	assert.NotPanics(suite.T(), func() {
		timer.Stop()
	})
	assert.GreaterOrEqual(suite.T(), timer.Elapsed(), time.Duration(0))
}
