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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CollectorTestSuite struct {
	suite.Suite
	collector *Collector
}

func TestCollectorSuite(t *testing.T) {
	suite.Run(t, new(CollectorTestSuite))
}

func (suite *CollectorTestSuite) SetupTest() {
	suite.collector = NewCollector()
}

func (suite *CollectorTestSuite) TestRecordAggregates() {
	samples := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		50 * time.Millisecond,
		20 * time.Millisecond,
	}
	for _, d := range samples {
		suite.collector.Record("load_teas", d)
	}

	m, found := suite.collector.StatsFor("load_teas")
	require.True(suite.T(), found)

	assert.Equal(suite.T(), "load_teas", m.Name)
	assert.Equal(suite.T(), int64(4), m.Count)
	assert.Equal(suite.T(), 110*time.Millisecond, m.Total)
	assert.Equal(suite.T(), 10*time.Millisecond, m.Min)
	assert.Equal(suite.T(), 50*time.Millisecond, m.Max)
	assert.Equal(suite.T(), 20*time.Millisecond, m.Last)
	assert.Equal(suite.T(), 27500*time.Microsecond, m.Avg())
}

func (suite *CollectorTestSuite) TestSingleSampleSetsAllAggregates() {
	suite.collector.Record("load_once", 42*time.Millisecond)

	m, found := suite.collector.StatsFor("load_once")
	require.True(suite.T(), found)

	assert.Equal(suite.T(), int64(1), m.Count)
	assert.Equal(suite.T(), 42*time.Millisecond, m.Min)
	assert.Equal(suite.T(), 42*time.Millisecond, m.Max)
	assert.Equal(suite.T(), 42*time.Millisecond, m.Last)
	assert.Equal(suite.T(), 42*time.Millisecond, m.Avg())
}

func (suite *CollectorTestSuite) TestStatsForUnknownOperation() {
	m, found := suite.collector.StatsFor("absent")

	assert.False(suite.T(), found)
	assert.Equal(suite.T(), OperationMetrics{}, m)
	assert.Equal(suite.T(), time.Duration(0), m.Avg())
}

func (suite *CollectorTestSuite) TestAllStatsReturnsCopies() {
	suite.collector.Record("op1", 10*time.Millisecond)
	suite.collector.Record("op2", 20*time.Millisecond)

	all := suite.collector.AllStats()
	require.Len(suite.T(), all, 2)

	// Mutating the snapshot must not leak into the collector.
	m := all["op1"]
	m.Count = 99
	all["op1"] = m

	current, found := suite.collector.StatsFor("op1")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), current.Count)
}

func (suite *CollectorTestSuite) TestSlowest() {
	suite.collector.Record("fast", 5*time.Millisecond)
	suite.collector.Record("slow", 50*time.Millisecond)
	suite.collector.Record("medium", 20*time.Millisecond)

	suite.T().Run("Ordering", func(t *testing.T) {
		slowest := suite.collector.Slowest(10)
		require.Len(t, slowest, 3)
		assert.Equal(t, "slow", slowest[0].Name)
		assert.Equal(t, "medium", slowest[1].Name)
		assert.Equal(t, "fast", slowest[2].Name)
	})

	suite.T().Run("Truncation", func(t *testing.T) {
		slowest := suite.collector.Slowest(2)
		require.Len(t, slowest, 2)
		assert.Equal(t, "slow", slowest[0].Name)
		assert.Equal(t, "medium", slowest[1].Name)
	})

	suite.T().Run("RanksByAverageNotTotal", func(t *testing.T) {
		// Many cheap calls outweigh one expensive call in total time,
		// but the ranking is per-call average.
		for i := 0; i < 100; i++ {
			suite.collector.Record("chatty", 10*time.Millisecond)
		}
		slowest := suite.collector.Slowest(1)
		require.Len(t, slowest, 1)
		assert.Equal(t, "slow", slowest[0].Name)
	})
}

func (suite *CollectorTestSuite) TestMostCalled() {
	for i := 0; i < 5; i++ {
		suite.collector.Record("frequent", time.Millisecond)
	}
	for i := 0; i < 2; i++ {
		suite.collector.Record("occasional", time.Millisecond)
	}
	suite.collector.Record("rare", time.Hour)

	mostCalled := suite.collector.MostCalled(2)

	require.Len(suite.T(), mostCalled, 2)
	assert.Equal(suite.T(), "frequent", mostCalled[0].Name)
	assert.Equal(suite.T(), "occasional", mostCalled[1].Name)
}

func (suite *CollectorTestSuite) TestRankingTieBreaksByName() {
	suite.collector.Record("zebra", 10*time.Millisecond)
	suite.collector.Record("alpha", 10*time.Millisecond)

	slowest := suite.collector.Slowest(2)
	require.Len(suite.T(), slowest, 2)
	assert.Equal(suite.T(), "alpha", slowest[0].Name)
	assert.Equal(suite.T(), "zebra", slowest[1].Name)
}

func (suite *CollectorTestSuite) TestDisableDropsSamples() {
	suite.collector.Record("op1", 10*time.Millisecond)
	suite.collector.Disable()
	suite.collector.Record("op1", 10*time.Millisecond)
	suite.collector.Record("op2", 10*time.Millisecond)

	assert.False(suite.T(), suite.collector.IsEnabled())

	m, found := suite.collector.StatsFor("op1")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)

	_, found = suite.collector.StatsFor("op2")
	assert.False(suite.T(), found)

	suite.collector.Enable()
	suite.collector.Record("op1", 10*time.Millisecond)
	m, _ = suite.collector.StatsFor("op1")
	assert.Equal(suite.T(), int64(2), m.Count)
}

func (suite *CollectorTestSuite) TestResetKeepsEnabledFlag() {
	suite.collector.Record("op1", 10*time.Millisecond)
	suite.collector.Disable()

	suite.collector.Reset()

	assert.Empty(suite.T(), suite.collector.AllStats())
	assert.False(suite.T(), suite.collector.IsEnabled())
}

func (suite *CollectorTestSuite) TestConcurrentRecording() {
	const goroutines = 8
	const samples = 250

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < samples; i++ {
				suite.collector.Record(fmt.Sprintf("op%d", i%4), time.Millisecond)
			}
		}(g)
	}
	wg.Wait()

	var total int64
	for _, m := range suite.collector.AllStats() {
		total += m.Count
	}
	assert.Equal(suite.T(), int64(goroutines*samples), total)
}
