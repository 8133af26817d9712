package model_test

import (
	"testing"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/stretchr/testify/assert"
)

// TestNormalizeEmpType 测试员工类型归一化
func TestNormalizeEmpType(t *testing.T) {
	assert.Equal(t, model.EmpTypeAbleBodied, model.NormalizeEmpType("HEALTHY"))
	assert.Equal(t, model.EmpTypeBlind, model.NormalizeEmpType(model.EmpTypeBlind))
	assert.Equal(t, "UNKNOWN", model.NormalizeEmpType("UNKNOWN"))
}

// TestValidEmpType 测试员工类型合法性
func TestValidEmpType(t *testing.T) {
	assert.True(t, model.ValidEmpType(model.EmpTypeBlind))
	assert.True(t, model.ValidEmpType(model.EmpTypeAbleBodied))
	assert.True(t, model.ValidEmpType(model.EmpTypeOther))
	assert.False(t, model.ValidEmpType("HEALTHY"))
	assert.False(t, model.ValidEmpType(""))
}

// TestEmpInfo_Validate 测试员工模型校验
func TestEmpInfo_Validate(t *testing.T) {
	emp := &model.EmpInfo{
		OrgID:    1,
		EmpName:  "张三",
		EmpType:  model.EmpTypeOther,
		IDNumber: "id-1",
	}
	assert.NoError(t, emp.Validate())

	// 盲人缺残疾证号
	blind := &model.EmpInfo{OrgID: 1, EmpType: model.EmpTypeBlind, IDNumber: "id-2"}
	assert.Error(t, blind.Validate())
	blind.DisabilityNo = "D-1"
	assert.NoError(t, blind.Validate())

	// 缺机构
	assert.Error(t, (&model.EmpInfo{EmpType: model.EmpTypeOther, IDNumber: "id-3"}).Validate())
	// 缺证件号
	assert.Error(t, (&model.EmpInfo{OrgID: 1, EmpType: model.EmpTypeOther}).Validate())
}
