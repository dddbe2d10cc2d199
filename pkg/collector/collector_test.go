package collector

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func TestCollect(t *testing.T) {
	fakeClient := fake.NewSimpleClientset(
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "ns"}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "db", Namespace: "ns"}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "other", Namespace: "elsewhere"}},
		&corev1.Endpoints{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "ns"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-0", Namespace: "ns"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "ns"}},
	)

	snap, err := New(fakeClient).Collect(context.Background(), "ns")
	require.NoError(t, err)

	assert.Equal(t, "ns", snap.Namespace)
	assert.Len(t, snap.Services, 2)

	require.Contains(t, snap.Endpoints, "web")
	assert.Equal(t, "web", snap.Endpoints["web"].Name)

	assert.Len(t, snap.Pods, 2)
	require.Contains(t, snap.Pods, "web-0")
	assert.Equal(t, "web-0", snap.Pods["web-0"].Name)
}

func TestCollect_EmptyNamespace(t *testing.T) {
	snap, err := New(fake.NewSimpleClientset()).Collect(context.Background(), "empty")
	require.NoError(t, err)

	assert.Empty(t, snap.Services)
	assert.Empty(t, snap.Endpoints)
	assert.Empty(t, snap.Pods)
}

func TestCollect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := New(fake.NewSimpleClientset()).Collect(ctx, "ns")
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_PermissionDenied(t *testing.T) {
	fakeClient := fake.NewSimpleClientset()
	fakeClient.PrependReactor("list", "endpoints", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewForbidden(
			schema.GroupResource{Resource: "endpoints"}, "", errors.New("rbac says no"))
	})

	snap, err := New(fakeClient).Collect(context.Background(), "ns")
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermission)
	assert.Contains(t, err.Error(), "endpoints")
	assert.Contains(t, err.Error(), `"ns"`)
}

func TestCollect_Unauthorized(t *testing.T) {
	fakeClient := fake.NewSimpleClientset()
	fakeClient.PrependReactor("list", "services", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewUnauthorized("token expired")
	})

	_, err := New(fakeClient).Collect(context.Background(), "ns")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestCollect_ConnectionFailure(t *testing.T) {
	fakeClient := fake.NewSimpleClientset()
	fakeClient.PrependReactor("list", "pods", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	})

	_, err := New(fakeClient).Collect(context.Background(), "ns")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
}
