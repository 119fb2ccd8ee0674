package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
)

var errFake = errors.New("fake failure")

// callLog records calls across the init goroutine and the loop goroutine.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) index(call string) int {
	for i, c := range l.list() {
		if c == call {
			return i
		}
	}
	return -1
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.list() {
		if c == call {
			n++
		}
	}
	return n
}

type fakeInstance struct {
	log        *callLog
	adapterErr error
	nilAdapter bool
	deviceErr  error
	block      bool
	device     *fakeDevice
	surface    *fakeSurfaceContext
}

func newFakeInstance(log *callLog) *fakeInstance {
	return &fakeInstance{
		log:     log,
		device:  &fakeDevice{log: log, preferred: renderer.TextureFormatRGBA8Unorm},
		surface: &fakeSurfaceContext{log: log},
	}
}

func (i *fakeInstance) RequestAdapter(ctx context.Context, _ renderer.AdapterOptions) (renderer.Adapter, error) {
	i.log.add("requestAdapter")
	if i.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if i.adapterErr != nil {
		return nil, i.adapterErr
	}
	if i.nilAdapter {
		return nil, nil
	}
	return &fakeAdapter{instance: i}, nil
}

func (i *fakeInstance) Surface() renderer.SurfaceContext {
	return i.surface
}

type fakeAdapter struct {
	instance *fakeInstance
}

func (a *fakeAdapter) RequestDevice(context.Context) (renderer.Device, error) {
	a.instance.log.add("requestDevice")
	if a.instance.deviceErr != nil {
		return nil, a.instance.deviceErr
	}
	return a.instance.device, nil
}

func (a *fakeAdapter) Name() string { return "fake adapter" }

type bufferWrite struct {
	buffer renderer.Buffer
	offset uint64
	data   []byte
}

type fakeDevice struct {
	log       *callLog
	preferred renderer.TextureFormat
	bufferErr error
	groupErr  error
	released  bool

	mu       sync.Mutex
	buffers  []*fakeBuffer
	textures []*fakeTexture
	writes   []bufferWrite
	groups   []renderer.UniformBindGroupDescriptor
}

func (d *fakeDevice) PreferredColorFormat() renderer.TextureFormat { return d.preferred }

func (d *fakeDevice) CreateBuffer(desc renderer.BufferDescriptor) (renderer.Buffer, error) {
	d.log.add("createBuffer")
	if d.bufferErr != nil {
		return nil, d.bufferErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	b := &fakeBuffer{desc: desc}
	d.buffers = append(d.buffers, b)
	return b, nil
}

func (d *fakeDevice) CreateUniformBindGroup(desc renderer.UniformBindGroupDescriptor) (renderer.BindGroupLayout, renderer.BindGroup, error) {
	d.log.add("createBindGroup")
	if d.groupErr != nil {
		return nil, nil, d.groupErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.groups = append(d.groups, desc)
	return &fakeReleasable{}, &fakeReleasable{}, nil
}

func (d *fakeDevice) CreateTexture(desc renderer.TextureDescriptor) (renderer.Texture, error) {
	d.log.add("createTexture")
	d.mu.Lock()
	defer d.mu.Unlock()
	t := &fakeTexture{desc: desc}
	d.textures = append(d.textures, t)
	return t, nil
}

func (d *fakeDevice) WriteBuffer(buf renderer.Buffer, offset uint64, data []byte) error {
	d.log.add("writeBuffer")
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writes = append(d.writes, bufferWrite{buffer: buf, offset: offset, data: append([]byte(nil), data...)})
	return nil
}

func (d *fakeDevice) Release() {
	d.released = true
}

func (d *fakeDevice) texturesCreated() []*fakeTexture {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*fakeTexture(nil), d.textures...)
}

type fakeBuffer struct {
	desc     renderer.BufferDescriptor
	released bool
}

func (b *fakeBuffer) Size() uint64 { return b.desc.Size }
func (b *fakeBuffer) Release()     { b.released = true }

type fakeReleasable struct {
	released bool
}

func (r *fakeReleasable) Release() { r.released = true }

type fakeTexture struct {
	desc     renderer.TextureDescriptor
	view     *fakeView
	released bool
}

func (t *fakeTexture) CreateView() (renderer.TextureView, error) {
	t.view = &fakeView{}
	return t.view, nil
}

func (t *fakeTexture) Release() { t.released = true }

type fakeView struct {
	id       int
	released bool
}

func (v *fakeView) Release() { v.released = true }

type fakeSurfaceContext struct {
	log *callLog

	mu       sync.Mutex
	configs  []renderer.SurfaceConfiguration
	current  *fakeView
	nextID   int
	presents int
}

func (s *fakeSurfaceContext) Configure(_ renderer.Device, cfg renderer.SurfaceConfiguration) error {
	s.log.add("configure")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs = append(s.configs, cfg)
	return nil
}

func (s *fakeSurfaceContext) CurrentTextureView() (renderer.TextureView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		s.nextID++
		s.current = &fakeView{id: s.nextID}
	}
	return s.current, nil
}

func (s *fakeSurfaceContext) Present() {
	s.log.add("present")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presents++
	if s.current != nil {
		s.current.Release()
		s.current = nil
	}
}

func (s *fakeSurfaceContext) lastConfig() renderer.SurfaceConfiguration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configs[len(s.configs)-1]
}

// fakeSurface drives the engine loop. Poll delivers queued resize batches, then runs the frame
// callbacks requested before the poll. It reports closed once maxFrames frames have run.
type fakeSurface struct {
	input.Dispatcher

	size      common.Size
	maxFrames int
	frameStep float64

	frames     []FrameCallback
	requests   int
	framesRun  int
	timestamp  float64
	resizeCb   func([]ResizeObservation)
	batches    map[int][]ResizeObservation
	stopCalled bool
}

func newFakeSurface(maxFrames int) *fakeSurface {
	return &fakeSurface{
		size:      common.Size{Width: 800, Height: 600},
		maxFrames: maxFrames,
		frameStep: 16,
		batches:   map[int][]ResizeObservation{},
	}
}

func (s *fakeSurface) RequestFrame(cb FrameCallback) {
	s.requests++
	s.frames = append(s.frames, cb)
}

func (s *fakeSurface) ObserveResize(cb func([]ResizeObservation)) func() {
	s.resizeCb = cb
	return func() { s.stopCalled = true }
}

func (s *fakeSurface) DrawableSize() common.Size {
	return s.size
}

func (s *fakeSurface) Poll() bool {
	if s.framesRun >= s.maxFrames {
		return false
	}
	if len(s.frames) == 0 {
		time.Sleep(time.Millisecond)
		return true
	}

	if batch, ok := s.batches[s.framesRun]; ok && s.resizeCb != nil {
		delete(s.batches, s.framesRun)
		s.resizeCb(batch)
	}

	due := s.frames
	s.frames = nil
	for _, cb := range due {
		s.timestamp += s.frameStep
		s.framesRun++
		cb(s.timestamp)
	}
	return true
}

// recordingApp logs its hooks and can fail OnInit or advance a fake clock in OnFrame.
type recordingApp struct {
	log       *callLog
	initErr   error
	onFrame   func()
	resizes   []common.Size
	timestamp []float64
}

func (a *recordingApp) OnInit(context.Context, renderer.Device) error {
	a.log.add("onInit")
	return a.initErr
}

func (a *recordingApp) OnResize(_ renderer.Device, size common.Size) {
	a.log.add("onResize")
	a.resizes = append(a.resizes, size)
}

func (a *recordingApp) OnFrame(_ renderer.Device, _ renderer.SurfaceContext, timestamp float64) {
	a.log.add("onFrame")
	a.timestamp = append(a.timestamp, timestamp)
	if a.onFrame != nil {
		a.onFrame()
	}
}

type recordingBanner struct {
	calls  []string
	title  string
	detail string
}

func (b *recordingBanner) Show(title, detail string) {
	b.calls = append(b.calls, "show")
	b.title, b.detail = title, detail
}

func (b *recordingBanner) Clear() {
	b.calls = append(b.calls, "clear")
	b.title, b.detail = "", ""
}

type recordingMonitor struct {
	name     string
	min, max float64
	sample   func() float64
	ticks    int
}

func (m *recordingMonitor) AddGraph(name string, min, max float64, sample func() float64) {
	m.name, m.min, m.max, m.sample = name, min, max, sample
}

func (m *recordingMonitor) Tick() bool {
	m.ticks++
	return false
}
