package service_test

import (
	"testing"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrgService_Create 测试创建机构,初始状态为草稿
func TestOrgService_Create(t *testing.T) {
	env := newTestEnv(t)

	org, err := env.orgService.Create(&service.CreateOrgRequest{
		OrgName:            "阳光按摩院",
		OrgCode6:           "370102",
		CityID:             "city-01",
		CountyID:           "county-02",
		LegalPersonName:    "李四",
		LegalPersonIsBlind: true,
		LegalPersonDisabNo: "D-1001",
	})
	assert.NoError(t, err)
	assert.NotZero(t, org.OrgID)
	assert.Equal(t, model.StatusDraft, org.Status)
	assert.Equal(t, "阳光按摩院", org.OrgName)
	assert.True(t, org.LegalPersonIsBlind)
}

// TestOrgService_Create_RequiresName 测试机构名称必填
func TestOrgService_Create_RequiresName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orgService.Create(&service.CreateOrgRequest{})
	assertBizKind(t, err, service.KindValidation)
}

// TestOrgService_Get 测试机构详情含附件列表
func TestOrgService_Get(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "详情机构")

	detail, err := env.orgService.Get(org.OrgID)
	assert.NoError(t, err)
	assert.Equal(t, org.OrgID, detail.OrgID)
	assert.NotNil(t, detail.Attachments)
	assert.Empty(t, detail.Attachments)
}

// TestOrgService_Get_NotFound 测试机构不存在
func TestOrgService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orgService.Get(999)
	assertBizKind(t, err, service.KindNotFound)
}

// TestOrgService_Update 测试部分字段更新
func TestOrgService_Update(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "旧名称")

	newName := "新名称"
	updated, err := env.orgService.Update(org.OrgID, &service.UpdateOrgRequest{OrgName: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "新名称", updated.OrgName)
	// 未提供的字段保持原值
	assert.Equal(t, "370100", updated.OrgCode6)
}

// TestOrgService_Update_StateDenied 测试提交后禁止修改
func TestOrgService_Update_StateDenied(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "已提交机构")

	_, err := env.reviewService.Submit(org.OrgID)
	require.NoError(t, err)

	newName := "改名"
	_, err = env.orgService.Update(org.OrgID, &service.UpdateOrgRequest{OrgName: &newName})
	assertBizKind(t, err, service.KindStateDenied)
}

// TestOrgService_Update_RejectedEditable 测试退回后可重新编辑
func TestOrgService_Update_RejectedEditable(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "被退回机构")

	_, err := env.reviewService.Submit(org.OrgID)
	require.NoError(t, err)
	_, err = env.reviewService.Reject(org.OrgID, "材料不全")
	require.NoError(t, err)

	newName := "修订后名称"
	updated, err := env.orgService.Update(org.OrgID, &service.UpdateOrgRequest{OrgName: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "修订后名称", updated.OrgName)
}

// TestOrgService_Delete 测试软删除后机构不可见
func TestOrgService_Delete(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "待删除机构")

	err := env.orgService.Delete(org.OrgID)
	assert.NoError(t, err)

	_, err = env.orgService.Get(org.OrgID)
	assertBizKind(t, err, service.KindNotFound)

	// 重复删除按不存在处理
	err = env.orgService.Delete(org.OrgID)
	assertBizKind(t, err, service.KindNotFound)
}

// TestOrgService_CreateNode_DuplicateName 测试同级重名拒绝
func TestOrgService_CreateNode_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	root := createOrg(t, env, "总院")

	_, err := env.orgService.CreateNode(&service.CreateOrgRequest{
		OrgName:  "分院",
		ParentID: &root.OrgID,
	})
	require.NoError(t, err)

	_, err = env.orgService.CreateNode(&service.CreateOrgRequest{
		OrgName:  "分院",
		ParentID: &root.OrgID,
	})
	assertBizKind(t, err, service.KindConflict)

	// 不同父节点下允许同名
	_, err = env.orgService.CreateNode(&service.CreateOrgRequest{OrgName: "分院"})
	assert.NoError(t, err)
}

// TestOrgService_CreateNode_ParentNotFound 测试父机构不存在
func TestOrgService_CreateNode_ParentNotFound(t *testing.T) {
	env := newTestEnv(t)

	parentID := uint(999)
	_, err := env.orgService.CreateNode(&service.CreateOrgRequest{
		OrgName:  "孤儿节点",
		ParentID: &parentID,
	})
	assertBizKind(t, err, service.KindNotFound)
}

// TestOrgService_Employees 测试员工列表与盲人占比统计
func TestOrgService_Employees(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "统计机构")

	_, err := env.empService.Create(&service.CreateEmpRequest{
		OrgID: org.OrgID, EmpName: "甲", EmpType: model.EmpTypeBlind,
		IDNumber: "id-1", DisabilityNo: "D-1",
	})
	require.NoError(t, err)
	_, err = env.empService.Create(&service.CreateEmpRequest{
		OrgID: org.OrgID, EmpName: "乙", EmpType: model.EmpTypeAbleBodied, IDNumber: "id-2",
	})
	require.NoError(t, err)
	_, err = env.empService.Create(&service.CreateEmpRequest{
		OrgID: org.OrgID, EmpName: "丙", EmpType: model.EmpTypeOther, IDNumber: "id-3",
	})
	require.NoError(t, err)

	view, err := env.orgService.Employees(org.OrgID)
	assert.NoError(t, err)
	assert.Len(t, view.Employees, 3)
	assert.Equal(t, int64(3), view.Statistics.Total)
	assert.Equal(t, int64(1), view.Statistics.Blind)
	assert.Equal(t, 0.33, view.Statistics.Ratio)
}

// TestOrgService_Employees_Empty 测试无员工时占比为 0
func TestOrgService_Employees_Empty(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "空机构")

	view, err := env.orgService.Employees(org.OrgID)
	assert.NoError(t, err)
	assert.Empty(t, view.Employees)
	assert.Zero(t, view.Statistics.Total)
	assert.Zero(t, view.Statistics.Ratio)
}

// TestBlindRatio 测试盲人占比计算,保留两位小数
func TestBlindRatio(t *testing.T) {
	assert.Equal(t, 0.0, service.BlindRatio(0, 0))
	assert.Equal(t, 0.0, service.BlindRatio(0, 5))
	assert.Equal(t, 0.25, service.BlindRatio(1, 4))
	assert.Equal(t, 0.67, service.BlindRatio(2, 3))
	assert.Equal(t, 1.0, service.BlindRatio(5, 5))
}
