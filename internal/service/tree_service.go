package service

import (
	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
)

// TreeService 组织树服务接口
type TreeService interface {
	Build(filter *repository.OrgFilter) ([]*TreeNode, error)
}

// TreeNode 组织树节点,带派生统计
type TreeNode struct {
	OrgView
	EmployeeCount     int64       `json:"employeeCount"`
	BlindCount        int64       `json:"blindCount"`
	BlindRatio        float64     `json:"blindRatio"`
	PendingAuditCount int64       `json:"pendingAuditCount"`
	AuditCount        int64       `json:"auditCount"`
	Children          []*TreeNode `json:"children,omitempty"`
}

// treeService 组织树服务实现
type treeService struct {
	orgRepo   repository.OrgRepository
	empRepo   repository.EmpRepository
	applyRepo repository.ApplyRepository
}

// NewTreeService 创建组织树服务
func NewTreeService(orgRepo repository.OrgRepository, empRepo repository.EmpRepository, applyRepo repository.ApplyRepository) TreeService {
	return &treeService{
		orgRepo:   orgRepo,
		empRepo:   empRepo,
		applyRepo: applyRepo,
	}
}

// Build 组装带统计注解的组织树
// 单次线性扫描按 parentId 归组;父节点缺失或已删除的节点直接作为根,
// 困在父链环里的节点在可达性检查后同样提升为根,保证每个机构恰好出现一次
func (s *treeService) Build(filter *repository.OrgFilter) ([]*TreeNode, error) {
	orgs, err := s.orgRepo.FindByFilter(filter)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*TreeNode, len(orgs))
	order := make([]uint, 0, len(orgs))
	for _, org := range orgs {
		node, err := s.annotate(org)
		if err != nil {
			return nil, err
		}
		nodes[org.ID] = node
		order = append(order, org.ID)
	}

	var roots []*TreeNode
	attached := make(map[uint]bool, len(orgs))
	for _, id := range order {
		node := nodes[id]
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok && *node.ParentID != id {
				parent.Children = append(parent.Children, node)
				attached[id] = true
				continue
			}
		}
		roots = append(roots, node)
	}

	// 可达性检查:父链成环的节点不会挂到任何根下,提升为根并切断父链
	reachable := make(map[uint]bool, len(orgs))
	var mark func(node *TreeNode)
	mark = func(node *TreeNode) {
		if reachable[node.OrgID] {
			return
		}
		reachable[node.OrgID] = true
		for _, child := range node.Children {
			mark(child)
		}
	}
	for _, root := range roots {
		mark(root)
	}
	for _, id := range order {
		if reachable[id] {
			continue
		}
		node := nodes[id]
		if attached[id] && node.ParentID != nil {
			parent := nodes[*node.ParentID]
			parent.Children = removeChild(parent.Children, node)
		}
		roots = append(roots, node)
		mark(node)
	}

	return roots, nil
}

// annotate 为单个机构计算派生统计
func (s *treeService) annotate(org *model.OrgInfo) (*TreeNode, error) {
	total, blind, err := s.empRepo.CountByOrg(org.ID)
	if err != nil {
		return nil, err
	}
	auditTotal, auditPending, err := s.applyRepo.CountAuditByOrg(org.ID)
	if err != nil {
		return nil, err
	}
	return &TreeNode{
		OrgView:           *NewOrgView(org),
		EmployeeCount:     total,
		BlindCount:        blind,
		BlindRatio:        BlindRatio(blind, total),
		PendingAuditCount: auditPending,
		AuditCount:        auditTotal,
	}, nil
}

// removeChild 从子节点切片中移除指定节点
func removeChild(children []*TreeNode, target *TreeNode) []*TreeNode {
	for i, child := range children {
		if child == target {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}
