// Copyright Brightclark Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package test

import "testing"

func Test_Invalid_Range_01(t *testing.T) {
	CheckInvalid(t, "invalid_range_01")
}

func Test_Invalid_Duplicate_01(t *testing.T) {
	CheckInvalid(t, "invalid_duplicate_01")
}

func Test_Invalid_Enum_01(t *testing.T) {
	CheckInvalid(t, "invalid_enum_01")
}

func Test_Invalid_Member_01(t *testing.T) {
	CheckInvalid(t, "invalid_member_01")
}

func Test_Invalid_Module_01(t *testing.T) {
	CheckInvalid(t, "invalid_module_01")
}

func Test_Invalid_Multi_01(t *testing.T) {
	CheckInvalid(t, "invalid_multi_01")
}
