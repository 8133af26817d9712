package service_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDraftService_Save 测试草稿快照落库
func TestDraftService_Save(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.draftService.Save(json.RawMessage(`{"orgName":"填写中的机构","remark":"还没起完名"}`))
	assert.NoError(t, err)
	assert.NotZero(t, result.DraftID)
	assert.Nil(t, result.OrgID)

	// 快照原样保存
	var saved model.ApplyAudit
	require.NoError(t, env.db.First(&saved, result.DraftID).Error)
	assert.Equal(t, model.StatusDraft, saved.Status)
	assert.JSONEq(t, `{"orgName":"填写中的机构","remark":"还没起完名"}`, string(saved.Payload))
}

// TestDraftService_Save_ExistingOrg 测试关联已有机构
func TestDraftService_Save_ExistingOrg(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "已有机构")

	payload := fmt.Sprintf(`{"orgId":%d,"orgName":"已有机构"}`, org.OrgID)
	result, err := env.draftService.Save(json.RawMessage(payload))
	assert.NoError(t, err)
	require.NotNil(t, result.OrgID)
	assert.Equal(t, org.OrgID, *result.OrgID)
}

// TestDraftService_Save_SoftDeletedOrg 测试引用已删除机构时复用原记录
func TestDraftService_Save_SoftDeletedOrg(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "已删除机构")
	require.NoError(t, env.orgService.Delete(org.OrgID))

	payload := fmt.Sprintf(`{"orgId":%d,"orgName":"已删除机构"}`, org.OrgID)
	result, err := env.draftService.Save(json.RawMessage(payload))
	assert.NoError(t, err)
	require.NotNil(t, result.OrgID)
	assert.Equal(t, org.OrgID, *result.OrgID)

	// 原记录保持删除状态,未新建同主键机构
	var count int64
	require.NoError(t, env.db.Model(&model.OrgInfo{}).Where("id = ?", org.OrgID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	existing, err := env.orgRepo.FindByIDAny(org.OrgID)
	require.NoError(t, err)
	assert.True(t, existing.IsDelete)
}

// TestDraftService_Save_CreatesOrgStub 测试机构不存在时按快照补建桩记录
func TestDraftService_Save_CreatesOrgStub(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.draftService.Save(json.RawMessage(`{"orgId":42,"orgName":"补建机构","orgCode6":"370109","cityId":"c1","countyId":"x1"}`))
	assert.NoError(t, err)
	require.NotNil(t, result.OrgID)
	assert.Equal(t, uint(42), *result.OrgID)

	org, err := env.orgRepo.FindByID(42)
	require.NoError(t, err)
	assert.Equal(t, "补建机构", org.OrgName)
	assert.Equal(t, "370109", org.OrgCode6)
	assert.Equal(t, model.StatusDraft, org.Status)
}

// TestDraftService_Save_EmptyPayload 测试空请求体也能保存草稿
func TestDraftService_Save_EmptyPayload(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.draftService.Save(nil)
	assert.NoError(t, err)
	assert.NotZero(t, result.DraftID)

	var saved model.ApplyAudit
	require.NoError(t, env.db.First(&saved, result.DraftID).Error)
	assert.JSONEq(t, "{}", string(saved.Payload))
}

// TestDraftService_Save_InvalidJSON 测试非法 JSON 拒绝
func TestDraftService_Save_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.draftService.Save(json.RawMessage(`{"orgId":`))
	assert.Error(t, err)
}

// TestDraftService_Save_Repeated 测试重复保存产生多条草稿
func TestDraftService_Save_Repeated(t *testing.T) {
	env := newTestEnv(t)
	org := createOrg(t, env, "草稿机构")

	payload := fmt.Sprintf(`{"orgId":%d}`, org.OrgID)
	first, err := env.draftService.Save(json.RawMessage(payload))
	require.NoError(t, err)
	second, err := env.draftService.Save(json.RawMessage(payload))
	require.NoError(t, err)
	assert.NotEqual(t, first.DraftID, second.DraftID)

	records, err := env.applyRepo.ListAuditByOrg(org.OrgID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
