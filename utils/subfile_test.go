/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  subfile_test.go - Tests del lector de regions.
 *
 */

package utils

import (
  "bytes"
  "os"
  "path/filepath"
  "testing"
)


func make_subfile(t *testing.T) (string,[]byte) {
  t.Helper ()
  data := make ( []byte, 1000 )
  for i := 0; i < len(data); i++ {
    data[i]= byte(i)
  }
  path := filepath.Join ( t.TempDir (), "data.bin" )
  if err := os.WriteFile ( path, data, 0644 ); err != nil {
    t.Fatalf ( "WriteFile() error = %v", err )
  }
  return path,data
} // end make_subfile


func TestSubfileReaderRead(t *testing.T) {

  path,data := make_subfile ( t )
  f,err := NewSubfileReader ( path, 100, 300 )
  if err != nil {
    t.Fatalf ( "NewSubfileReader() error = %v", err )
  }
  defer f.Close ()

  // Llig tota la regió amb un buffer menut
  var out bytes.Buffer
  buf := make ( []byte, 64 )
  for {
    n,err := f.Read ( buf )
    if err != nil {
      t.Fatalf ( "Read() error = %v", err )
    }
    if n == 0 { break }
    out.Write ( buf[:n] )
  }
  if out.Len () != 300 {
    t.Fatalf ( "read %d bytes, want 300", out.Len () )
  }
  if !bytes.Equal ( out.Bytes (), data[100:400] ) {
    t.Errorf ( "region content mismatch" )
  }

  // Després del final continua tornant 0
  if n,err := f.Read ( buf ); n != 0 || err != nil {
    t.Errorf ( "Read() after end = (%d,%v), want (0,nil)", n, err )
  }

} // end TestSubfileReaderRead


func TestSubfileReaderSeek(t *testing.T) {

  path,data := make_subfile ( t )
  f,err := NewSubfileReader ( path, 100, 300 )
  if err != nil {
    t.Fatalf ( "NewSubfileReader() error = %v", err )
  }
  defer f.Close ()

  if _,err := f.Seek ( 250, 0 ); err != nil {
    t.Fatalf ( "Seek() error = %v", err )
  }
  buf := make ( []byte, 100 )
  n,err := f.Read ( buf )
  if err != nil {
    t.Fatalf ( "Read() error = %v", err )
  }
  if n != 50 {
    t.Errorf ( "Read() = %d bytes, want 50" , n )
  }
  if !bytes.Equal ( buf[:n], data[350:400] ) {
    t.Errorf ( "content after Seek mismatch" )
  }

  // Errors
  if _,err := f.Seek ( 10, 1 ); err == nil {
    t.Errorf ( "Seek(whence=1) error = nil, want error" )
  }
  if _,err := f.Seek ( 300, 0 ); err == nil {
    t.Errorf ( "Seek(out of range) error = nil, want error" )
  }
  if _,err := f.Seek ( -1, 0 ); err == nil {
    t.Errorf ( "Seek(negative) error = nil, want error" )
  }

} // end TestSubfileReaderSeek
