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

package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type LogTestSuite struct {
	suite.Suite
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) TestGetLoggerReturnsSingleton() {
	logger1 := GetLogger()
	logger2 := GetLogger()

	require.NotNil(suite.T(), logger1)
	assert.Same(suite.T(), logger1, logger2)
}

func (suite *LogTestSuite) TestNewLoggerLevels() {
	testCases := []struct {
		name         string
		level        string
		expectError  bool
		debugEnabled bool
	}{
		{name: "Debug", level: "debug", debugEnabled: true},
		{name: "Info", level: "info", debugEnabled: false},
		{name: "Warn", level: "warn", debugEnabled: false},
		{name: "Error", level: "error", debugEnabled: false},
		{name: "Invalid", level: "loud", expectError: true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			logger, err := NewLogger(tc.level)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.debugEnabled, logger.IsDebugEnabled())
		})
	}
}

func (suite *LogTestSuite) TestWithReturnsNewLogger() {
	logger, err := NewLogger("info")
	require.NoError(suite.T(), err)

	withFields := logger.With(String(LoggerKeyComponentName, "CacheRegistry"))

	assert.NotSame(suite.T(), logger, withFields)
}

func (suite *LogTestSuite) TestFieldConversion() {
	testCases := []struct {
		name     string
		field    Field
		expected zap.Field
	}{
		{name: "String", field: String("key", "value"), expected: zap.String("key", "value")},
		{name: "Int", field: Int("key", 7), expected: zap.Int("key", 7)},
		{name: "Int64", field: Int64("key", 7), expected: zap.Int64("key", 7)},
		{name: "Float64", field: Float64("key", 1.5), expected: zap.Float64("key", 1.5)},
		{name: "Bool", field: Bool("key", true), expected: zap.Bool("key", true)},
		{name: "Duration", field: Duration("key", time.Second), expected: zap.Duration("key", time.Second)},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.field.zapField())
		})
	}
}

func (suite *LogTestSuite) TestErrorField() {
	err := errors.New("backend unavailable")
	field := Error(err)

	assert.Equal(suite.T(), "error", field.Key)
	assert.Equal(suite.T(), zap.NamedError("error", err), field.zapField())
}

func (suite *LogTestSuite) TestLoggingDoesNotPanic() {
	logger, err := NewLogger("debug")
	require.NoError(suite.T(), err)

	assert.NotPanics(suite.T(), func() {
		logger.Debug("debug message", String("key", "value"))
		logger.Info("info message", Int("count", 1))
		logger.Warn("warn message")
		logger.Error("error message", Error(errors.New("boom")))
	})
}
