package service_test

import (
	"testing"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDictService_OrgAttachTypes 测试机构附件类型目录
func TestDictService_OrgAttachTypes(t *testing.T) {
	env := newTestEnv(t)
	dict := service.NewDictService(env.orgTypeRepo, env.empTypeRepo)

	types, err := dict.OrgAttachTypes()
	assert.NoError(t, err)
	require.Len(t, types, len(model.DefaultOrgAttachTypes))
	assert.Equal(t, "BUSINESS_LICENSE", types[0].Code)
	assert.Equal(t, "营业执照", types[0].Name)
}

// TestDictService_EmpAttachTypes 测试员工附件类型目录
func TestDictService_EmpAttachTypes(t *testing.T) {
	env := newTestEnv(t)
	dict := service.NewDictService(env.orgTypeRepo, env.empTypeRepo)

	types, err := dict.EmpAttachTypes()
	assert.NoError(t, err)
	require.Len(t, types, len(model.DefaultEmpAttachTypes))
	assert.Equal(t, "ID_CARD", types[0].Code)
}

// TestDictService_OrgAttachTypes_ExcludesDeleted 测试目录排除软删除类型
func TestDictService_OrgAttachTypes_ExcludesDeleted(t *testing.T) {
	env := newTestEnv(t)
	dict := service.NewDictService(env.orgTypeRepo, env.empTypeRepo)

	require.NoError(t, env.db.Model(&model.OrgAttachType{}).
		Where("code = ?", "OTHER").Update("is_delete", true).Error)

	types, err := dict.OrgAttachTypes()
	assert.NoError(t, err)
	assert.Len(t, types, len(model.DefaultOrgAttachTypes)-1)
	for _, item := range types {
		assert.NotEqual(t, "OTHER", item.Code)
	}
}

// TestDictService_EmpTypes 测试员工类型静态目录
func TestDictService_EmpTypes(t *testing.T) {
	dict := service.NewDictService(nil, nil)

	types := dict.EmpTypes()
	require.Len(t, types, 3)
	assert.Equal(t, model.EmpTypeBlind, types[0].Code)
	assert.Equal(t, "盲人", types[0].Name)
	assert.Equal(t, model.EmpTypeAbleBodied, types[1].Code)
	assert.Equal(t, model.EmpTypeOther, types[2].Code)
}
