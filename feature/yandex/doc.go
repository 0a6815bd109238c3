// Package yandex talks to the Yandex Market Partner API.
//
// A seller account on Yandex Market runs one campaign per fulfilment scheme
// (FBS and DBS). Each campaign has its own offer listing and its own warehouse,
// so every scheme gets its own Adapter over a shared Client.
package yandex
