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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TrackTestSuite struct {
	suite.Suite
	collector *Collector
}

func TestTrackSuite(t *testing.T) {
	suite.Run(t, new(TrackTestSuite))
}

func (suite *TrackTestSuite) SetupTest() {
	suite.collector = NewCollector()
}

func (suite *TrackTestSuite) TestTrackRecordsEachCall() {
	wrapped := Track(suite.collector, "load_teas", func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 7, nil
	})

	for i := 0; i < 5; i++ {
		value, err := wrapped()
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 7, value)
	}

	m, found := suite.collector.StatsFor("load_teas")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(5), m.Count)
	assert.GreaterOrEqual(suite.T(), m.Avg(), 10*time.Millisecond)
	assert.Less(suite.T(), m.Avg(), 20*time.Millisecond)
}

func (suite *TrackTestSuite) TestTrackRecordsOnError() {
	wrapped := Track(suite.collector, "failing", func() (string, error) {
		return "", errors.New("backend unavailable")
	})

	_, err := wrapped()
	assert.EqualError(suite.T(), err, "backend unavailable")

	m, found := suite.collector.StatsFor("failing")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)
}

func (suite *TrackTestSuite) TestTrackRecordsOnPanic() {
	wrapped := Track(suite.collector, "panicking", func() (string, error) {
		panic("boom")
	})

	assert.PanicsWithValue(suite.T(), "boom", func() {
		_, _ = wrapped()
	})

	m, found := suite.collector.StatsFor("panicking")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)
}

func (suite *TrackTestSuite) TestTrack1PassesArgument() {
	wrapped := Track1(suite.collector, "by_category", func(category string) (string, error) {
		return "teas:" + category, nil
	})

	value, err := wrapped("green")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "teas:green", value)

	m, found := suite.collector.StatsFor("by_category")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)
}

func (suite *TrackTestSuite) TestTrack2PassesArguments() {
	wrapped := Track2(suite.collector, "paged", func(category string, limit int) (int, error) {
		return limit, nil
	})

	value, err := wrapped("green", 10)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, value)

	m, found := suite.collector.StatsFor("paged")
	require.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), m.Count)
}

func (suite *TrackTestSuite) TestTrackDefaultName() {
	wrapped := Track(suite.collector, "", sampleOperation)

	_, err := wrapped()
	require.NoError(suite.T(), err)

	var names []string
	for name := range suite.collector.AllStats() {
		names = append(names, name)
	}
	require.Len(suite.T(), names, 1)
	assert.Contains(suite.T(), names[0], "sampleOperation")
}

func sampleOperation() (int, error) {
	return 1, nil
}

type catalogStub struct{}

func (suite *TrackTestSuite) TestTrackMethodQualifiesName() {
	wrapped := TrackMethod(suite.collector, &catalogStub{}, "GetCategories", func() ([]string, error) {
		return []string{"green"}, nil
	})

	_, err := wrapped()
	require.NoError(suite.T(), err)

	_, found := suite.collector.StatsFor("catalogStub.GetCategories")
	assert.True(suite.T(), found)
}

func (suite *TrackTestSuite) TestTrackMethodSeparatesOwners() {
	type otherStub struct{}

	first := TrackMethod(suite.collector, catalogStub{}, "Count", func() (int, error) { return 1, nil })
	second := TrackMethod(suite.collector, otherStub{}, "Count", func() (int, error) { return 2, nil })

	_, err := first()
	require.NoError(suite.T(), err)
	_, err = second()
	require.NoError(suite.T(), err)

	assert.Len(suite.T(), suite.collector.AllStats(), 2)
}

func (suite *TrackTestSuite) TestMethodName() {
	testCases := []struct {
		name      string
		owner     any
		operation string
		expected  string
	}{
		{
			name:      "Value",
			owner:     catalogStub{},
			operation: "Load",
			expected:  "catalogStub.Load",
		},
		{
			name:      "Pointer",
			owner:     &catalogStub{},
			operation: "Load",
			expected:  "catalogStub.Load",
		},
		{
			name:      "NilOwner",
			owner:     nil,
			operation: "Load",
			expected:  "Load",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MethodName(tc.owner, tc.operation))
		})
	}
}
